package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

func userFixture() (*fixture, *usecase.UserUseCase) {
	f := newFixture()
	f.company("c1", plan.Estandar)
	f.company("c2", plan.Basico)
	f.store.users["u-c1"] = entity.User{ID: "u-c1", Username: "admin1", Role: entity.RoleAdminCliente, CompanyID: "c1", IsActive: true}
	f.store.users["v-c1"] = entity.User{ID: "v-c1", Username: "vend1", Role: entity.RoleVendedor, CompanyID: "c1", IsActive: true}
	f.store.users["u-c2"] = entity.User{ID: "u-c2", Username: "admin2", Role: entity.RoleAdminCliente, CompanyID: "c2", IsActive: true}
	f.store.users["cf1"] = entity.User{ID: "cf1", Username: "maria", Role: entity.RoleClienteFinal, IsActive: true}
	return f, usecase.NewUserUseCase(f.deps)
}

func TestUserList_Alcance(t *testing.T) {
	_, uc := userFixture()
	ctx := context.Background()

	all, err := uc.List(ctx, superAdmin(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 4)

	tenant, err := uc.List(ctx, admin("c1"), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, tenant.Items, 2)

	self, err := uc.List(ctx, entityClienteFinal(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, self.Items, 1)
	assert.Equal(t, "cf1", self.Items[0].ID)
}

func TestUserGet_OtraEmpresa(t *testing.T) {
	_, uc := userFixture()

	_, err := uc.Get(context.Background(), admin("c1"), "u-c2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserCreate_AdminNoCreaSuperAdmin(t *testing.T) {
	_, uc := userFixture()

	_, err := uc.Create(context.Background(), admin("c1"), dto.CreateUserRequest{
		Username: "root2", Password: "Clave2024", Role: entity.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_AdminFuerzaSuEmpresa(t *testing.T) {
	f, uc := userFixture()

	got, err := uc.Create(context.Background(), admin("c1"), dto.CreateUserRequest{
		Username: "vend2", Password: "Clave2024", Role: entity.RoleVendedor, CompanyID: "c2",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
	assert.NotEqual(t, "Clave2024", f.store.users[got.ID].PasswordHash)
}

func TestUserCreate_RolSinEmpresa(t *testing.T) {
	_, uc := userFixture()

	_, err := uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Username: "gerente9", Password: "Clave2024", Role: entity.RoleGerente,
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Este rol requiere estar asociado a una compañía.", ve.Violations[0].Message)
}

func TestUserDelete_NoPuedeEliminarseASiMismo(t *testing.T) {
	_, uc := userFixture()

	err := uc.Delete(context.Background(), admin("c1"), "u-c1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserMe_BanderasDelMenu(t *testing.T) {
	_, uc := userFixture()

	got, err := uc.Me(context.Background(), admin("c1"))
	require.NoError(t, err)
	assert.Equal(t, "Empresa c1", got.CompanyName)
	assert.Equal(t, "Estándar", got.Plan)
	assert.True(t, got.Menu.HasStandardReports)
	assert.False(t, got.Menu.HasAdvancedReports)
	require.NotNil(t, got.Menu.BranchLimit)
	assert.Equal(t, 3, *got.Menu.BranchLimit)

	cf, err := uc.Me(context.Background(), entityClienteFinal())
	require.NoError(t, err)
	assert.Equal(t, "Sin Plan", cf.Plan)
	assert.False(t, cf.Menu.HasStandardReports)
}
