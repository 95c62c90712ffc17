package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// UserUseCase gestión de usuarios con visibilidad según rol.
type UserUseCase struct {
	d Deps
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(d Deps) *UserUseCase {
	return &UserUseCase{d: d.withDefaults()}
}

// userFilter super_admin ve todo; cliente_final sin empresa solo a sí mismo; el resto su empresa.
func userFilter(p entity.Principal) (repository.UserFilter, error) {
	switch {
	case p.Anonymous():
		return repository.UserFilter{}, domain.ErrUnauthorized
	case p.IsSuperAdmin():
		return repository.UserFilter{}, nil
	case p.CompanyID == "":
		return repository.UserFilter{UserID: p.UserID}, nil
	default:
		return repository.UserFilter{CompanyID: p.CompanyID}, nil
	}
}

func visible(f repository.UserFilter, u *entity.User) bool {
	if f.UserID != "" && u.ID != f.UserID {
		return false
	}
	if f.CompanyID != "" && u.CompanyID != f.CompanyID {
		return false
	}
	return true
}

// Create alta de usuario. Un admin_cliente solo crea usuarios de su empresa y nunca super_admin.
func (uc *UserUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	companyID := in.CompanyID
	if !p.IsSuperAdmin() {
		if in.Role == entity.RoleSuperAdmin {
			return nil, domain.ErrForbidden
		}
		if p.CompanyID == "" {
			return nil, domain.ErrCompanyRequired
		}
		companyID = p.CompanyID
	}
	if companyID != "" {
		c, err := uc.d.Repos.Companies.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		RUT:          in.RUT,
		Role:         in.Role,
		CompanyID:    companyID,
		IsActive:     true,
		CreatedAt:    uc.d.Now(),
	}
	if err := uc.d.check("user", validation.User(u, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// Get obtiene un usuario visible para el principal.
func (uc *UserUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (uc *UserUseCase) load(ctx context.Context, p entity.Principal, id string) (*entity.User, error) {
	f, err := userFilter(p)
	if err != nil {
		return nil, err
	}
	u, err := uc.d.Repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || !visible(f, u) {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// List lista los usuarios visibles para el principal.
func (uc *UserUseCase) List(ctx context.Context, p entity.Principal, page dto.PageRequest) (*dto.UserListResponse, error) {
	f, err := userFilter(p)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	list, err := uc.d.Repos.Users.List(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update actualización parcial. Solo super_admin puede otorgar super_admin.
func (uc *UserUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		if *in.Role == entity.RoleSuperAdmin && !p.IsSuperAdmin() {
			return nil, domain.ErrForbidden
		}
		u.Role = *in.Role
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.RUT != nil {
		u.RUT = *in.RUT
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.d.check("user", validation.User(u, uc.d.now())); err != nil {
		return nil, err
	}
	if err := uc.d.Repos.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// Delete elimina un usuario visible. Un usuario con ventas registradas queda protegido.
func (uc *UserUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	if id == p.UserID {
		return domain.ErrConflict
	}
	if _, err := uc.load(ctx, p, id); err != nil {
		return err
	}
	return uc.d.Repos.Users.Delete(ctx, id)
}

// Me perfil del usuario autenticado con su plan y las banderas del menú.
func (uc *UserUseCase) Me(ctx context.Context, p entity.Principal) (*dto.MeResponse, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	u, err := uc.d.Repos.Users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	flags, err := uc.d.Resolver.MenuFlags(ctx, entity.Principal{UserID: u.ID, CompanyID: u.CompanyID, Role: u.Role})
	if err != nil {
		return nil, err
	}
	out := &dto.MeResponse{
		UserResponse: *ToUserResponse(u),
		Plan:         flags.Plan,
		Menu: dto.MenuFlagsResponse{
			HasStandardReports: flags.HasStandardReports,
			HasAdvancedReports: flags.HasAdvancedReports,
			BranchLimit:        limitPtr(flags.BranchLimit),
			Role:               flags.Role,
			Plan:               flags.Plan,
		},
	}
	if u.CompanyID != "" {
		if c, err := uc.d.Repos.Companies.GetByID(ctx, u.CompanyID); err == nil && c != nil {
			out.CompanyName = c.Name
		}
	}
	return out, nil
}
