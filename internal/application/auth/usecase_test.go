package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
	"github.com/jhoicas/Temucosoft-api/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, f, limit, offset)
	return args.Get(0).([]*entity.User), args.Error(1)
}

const testSecret = "secreto-de-prueba"

func newAuth(repo *MockUserRepository) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 15, RefreshExpMinutes: 60, Issuer: "temucosoft"})
}

func userWithPassword(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{ID: "u1", Username: "vendedor1", PasswordHash: string(hash), Role: entity.RoleVendedor, CompanyID: "c1", IsActive: true}
}

func TestRegister_CreaClienteFinal(t *testing.T) {
	repo := &MockUserRepository{}
	repo.On("GetByUsername", mock.Anything, "maria").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleClienteFinal && u.CompanyID == "" && u.PasswordHash != "Clave2024"
	})).Return(nil)

	got, err := newAuth(repo).Register(context.Background(), dto.RegisterRequest{Username: "maria", Email: "maria@example.cl", Password: "Clave2024"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClienteFinal, got.Role)
	repo.AssertExpectations(t)
}

func TestRegister_UsuarioDuplicado(t *testing.T) {
	repo := &MockUserRepository{}
	repo.On("GetByUsername", mock.Anything, "maria").Return(&entity.User{ID: "x"}, nil)

	_, err := newAuth(repo).Register(context.Background(), dto.RegisterRequest{Username: "maria", Password: "Clave2024"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_PasswordDebil(t *testing.T) {
	repo := &MockUserRepository{}
	repo.On("GetByUsername", mock.Anything, "maria").Return(nil, nil)

	_, err := newAuth(repo).Register(context.Background(), dto.RegisterRequest{Username: "maria", Password: "solamenteletras"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin(t *testing.T) {
	user := userWithPassword(t, "Clave2024")

	t.Run("credenciales válidas", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("GetByUsername", mock.Anything, "vendedor1").Return(user, nil)

		got, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "Clave2024"})
		require.NoError(t, err)

		userID, companyID, role, err := jwt.Parse(testSecret, got.Access)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
		assert.Equal(t, "c1", companyID)
		assert.Equal(t, entity.RoleVendedor, role)

		_, _, _, err = jwt.Parse(testSecret, got.Refresh)
		assert.Error(t, err, "el refresh no sirve como access")
	})

	t.Run("password incorrecta", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("GetByUsername", mock.Anything, "vendedor1").Return(user, nil)

		_, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "Otra2024"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("GetByUsername", mock.Anything, "nadie").Return(nil, nil)

		_, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "Clave2024"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inactivo", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false
		repo := &MockUserRepository{}
		repo.On("GetByUsername", mock.Anything, "vendedor1").Return(&inactive, nil)

		_, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "Clave2024"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestRefresh(t *testing.T) {
	user := userWithPassword(t, "Clave2024")
	repo := &MockUserRepository{}
	repo.On("GetByUsername", mock.Anything, "vendedor1").Return(user, nil)
	repo.On("GetByID", mock.Anything, "u1").Return(user, nil)
	uc := newAuth(repo)

	pair, err := uc.Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "Clave2024"})
	require.NoError(t, err)

	got, err := uc.Refresh(context.Background(), dto.RefreshRequest{Refresh: pair.Refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Access)

	_, err = uc.Refresh(context.Background(), dto.RefreshRequest{Refresh: pair.Access})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
