package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

func TestBranchCreate_BasicoConcurrente_SoloUnaExitosa(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Basico)
	uc := usecase.NewBranchUseCase(f.deps)

	var ok, rejected atomic.Int32
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			_, err := uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: fmt.Sprintf("Sucursal %d", i)})
			var qe *domain.QuotaExceededError
			switch {
			case err == nil:
				ok.Add(1)
			case errors.As(err, &qe):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(7), rejected.Load())
	assert.Len(t, f.store.branches, 1)
}

func TestBranchCreate_PremiumDiezSucursales(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Premium)
	uc := usecase.NewBranchUseCase(f.deps)

	for i := 0; i < 10; i++ {
		_, err := uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: fmt.Sprintf("Sucursal %d", i)})
		require.NoError(t, err, "sucursal %d", i)
	}
	assert.Len(t, f.store.branches, 10)
}

func TestBranchCreate_EstandarRechazaLaCuarta(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Estandar)
	uc := usecase.NewBranchUseCase(f.deps)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: fmt.Sprintf("Sucursal %d", i)})
		require.NoError(t, err)
	}
	_, err := uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: "Sucursal 4"})

	var qe *domain.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 3, qe.Limit)
	assert.Equal(t, "Estandar", qe.Tier)
	assert.Equal(t, "El Plan Estandar permite máximo 3 sucursal(es).", qe.Error())
}

func TestBranchCreate_SinSuscripcionUsaLimiteBasico(t *testing.T) {
	f := newFixture()
	f.company("c1", "")
	uc := usecase.NewBranchUseCase(f.deps)

	_, err := uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: "Casa matriz"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), admin("c1"), dto.BranchRequest{Name: "Segunda"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestBranchCreate_SuperAdminDebeIndicarEmpresa(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Basico)
	uc := usecase.NewBranchUseCase(f.deps)

	_, err := uc.Create(context.Background(), superAdmin(), dto.BranchRequest{Name: "Centro"})
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := uc.Create(context.Background(), superAdmin(), dto.BranchRequest{Name: "Centro", CompanyID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
}

func TestBranchUpdate_ExcluyeLaPropiaSucursal(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Basico)
	f.branch("b1", "c1")
	uc := usecase.NewBranchUseCase(f.deps)

	got, err := uc.Update(context.Background(), admin("c1"), "b1", dto.BranchRequest{Name: "Renombrada"})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", got.Name)
}

func TestBranchUpdate_SobreElLimiteTrasBajarDePlan(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Basico)
	f.branch("b1", "c1")
	f.branch("b2", "c1")
	uc := usecase.NewBranchUseCase(f.deps)

	_, err := uc.Update(context.Background(), admin("c1"), "b2", dto.BranchRequest{Name: "Renombrada"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Equal(t, "Sucursal b2", f.store.branches["b2"].Name)
}

func TestBranchGet_OtraEmpresaNoExiste(t *testing.T) {
	f := newFixture()
	f.company("c1", plan.Basico)
	f.company("c2", plan.Basico)
	f.branch("b2", "c2")
	uc := usecase.NewBranchUseCase(f.deps)

	_, err := uc.Get(context.Background(), admin("c1"), "b2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
