package entitlement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

func newResolver(subs *MockSubscriptionRepository, users *MockUserRepository) *entitlement.Resolver {
	return entitlement.NewResolver(plan.Default(plan.Of(1)), subs, users, nil)
}

func TestResolvePlan(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		sub  *entity.Subscription
		want plan.Tier
	}{
		{"sin suscripción", nil, ""},
		{"inactiva", &entity.Subscription{CompanyID: "c1", Plan: "Premium", Active: false}, ""},
		{"activa", &entity.Subscription{CompanyID: "c1", Plan: "Estandar", Active: true}, plan.Estandar},
		{"plan desconocido", &entity.Subscription{CompanyID: "c1", Plan: "Oro", Active: true}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subs := &MockSubscriptionRepository{}
			if tc.sub == nil {
				subs.On("GetByCompany", ctx, "c1").Return(nil, nil)
			} else {
				subs.On("GetByCompany", ctx, "c1").Return(tc.sub, nil)
			}
			got, err := newResolver(subs, nil).ResolvePlan(ctx, "c1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			subs.AssertExpectations(t)
		})
	}
}

func TestResolvePlan_SinEmpresaNoConsulta(t *testing.T) {
	subs := &MockSubscriptionRepository{}
	got, err := newResolver(subs, nil).ResolvePlan(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, plan.Tier(""), got)
	subs.AssertNotCalled(t, "GetByCompany", mock.Anything, mock.Anything)
}

// Sin suscripción: ninguna funcionalidad y el límite por defecto.
func TestSinSuscripcion_SinFuncionalidadesYLimitePorDefecto(t *testing.T) {
	ctx := context.Background()
	subs := &MockSubscriptionRepository{}
	subs.On("GetByCompany", ctx, "c1").Return(nil, nil)
	r := newResolver(subs, nil)

	for _, f := range []plan.Feature{plan.BasicFeatures, plan.StandardReports, plan.AdvancedReports, plan.UnlimitedBranches} {
		ok, err := r.HasFeature(ctx, "c1", f)
		require.NoError(t, err)
		assert.False(t, ok, f)
	}

	limit, tier, err := r.BranchLimit(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, plan.Tier(""), tier)
	assert.Equal(t, plan.Of(1), limit)
}

func TestHasFeature_FuncionalidadDesconocida(t *testing.T) {
	subs := &MockSubscriptionRepository{}
	ok, err := newResolver(subs, nil).HasFeature(context.Background(), "c1", plan.Feature("facturacion_sii"))
	require.NoError(t, err)
	assert.False(t, ok)
	subs.AssertNotCalled(t, "GetByCompany", mock.Anything, mock.Anything)
}

func TestHasFeature_ErrorDeRepositorio(t *testing.T) {
	ctx := context.Background()
	subs := &MockSubscriptionRepository{}
	subs.On("GetByCompany", ctx, "c1").Return(nil, errors.New("db caída"))
	_, err := newResolver(subs, nil).HasFeature(ctx, "c1", plan.StandardReports)
	assert.Error(t, err)
}

func TestMenuFlags(t *testing.T) {
	ctx := context.Background()
	subs := &MockSubscriptionRepository{}
	users := &MockUserRepository{}
	users.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", CompanyID: "c2", Role: entity.RoleGerente}, nil)
	subs.On("GetByCompany", ctx, "c2").Return(&entity.Subscription{CompanyID: "c2", Plan: "Estandar", Active: true}, nil)

	// El token trae una empresa antigua; manda la del usuario en la base.
	flags, err := newResolver(subs, users).MenuFlags(ctx, entity.Principal{UserID: "u1", CompanyID: "c1", Role: entity.RoleGerente})
	require.NoError(t, err)
	assert.True(t, flags.HasStandardReports)
	assert.False(t, flags.HasAdvancedReports)
	assert.Equal(t, plan.Of(3), flags.BranchLimit)
	assert.Equal(t, "Estándar", flags.Plan)
	assert.Equal(t, entity.RoleGerente, flags.Role)
}

func TestMenuFlags_SinPlan(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepository{}
	users.On("GetByID", ctx, "u9").Return(&entity.User{ID: "u9", Role: entity.RoleClienteFinal}, nil)

	flags, err := newResolver(&MockSubscriptionRepository{}, users).MenuFlags(ctx, entity.Principal{UserID: "u9", Role: entity.RoleClienteFinal})
	require.NoError(t, err)
	assert.Equal(t, entitlement.NoPlanLabel, flags.Plan)
	assert.False(t, flags.HasStandardReports)
}
