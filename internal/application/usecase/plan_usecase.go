package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// RUT genérico para la cuenta personal de un cliente que no informó el suyo.
const placeholderRUT = "11.111.111-1"

// PlanUseCase catálogo público y autoservicio de planes para clientes finales.
type PlanUseCase struct {
	d    Deps
	subs *SubscriptionUseCase
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(d Deps) *PlanUseCase {
	d = d.withDefaults()
	return &PlanUseCase{d: d, subs: NewSubscriptionUseCase(d)}
}

// List catálogo de planes en orden.
func (uc *PlanUseCase) List() []dto.PlanResponse {
	items := uc.d.Resolver.Catalog().Items()
	out := make([]dto.PlanResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PlanResponse{
			Key:         string(it.Tier),
			Label:       it.Label,
			Benefits:    it.Benefits,
			BranchLimit: limitPtr(it.BranchLimit),
		})
	}
	return out
}

// Select asigna un plan a la empresa del usuario. Si el usuario no tiene empresa se
// crea una cuenta personal y se le asocia. Vigencia: hoy + TrialDays.
func (uc *PlanUseCase) Select(ctx context.Context, p entity.Principal, in dto.SelectPlanRequest) (*dto.MyPlanResponse, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	if _, err := uc.d.Resolver.Catalog().ParseTier(in.Plan); err != nil {
		return nil, domain.NewValidationError("plan", "Plan inválido.")
	}

	var company *entity.Company
	var sub *entity.Subscription
	err := uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		user, err := tx.Users.GetByID(ctx, p.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		company, err = uc.ensureCompany(ctx, tx, user)
		if err != nil {
			return err
		}
		sub, err = uc.subs.subscribeInTx(ctx, tx, company.ID, dto.SubscribeRequest{Plan: in.Plan})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.d.Log.Info().Str("user_id", p.UserID).Str("company_id", company.ID).Str("plan", sub.Plan).Msg("plan seleccionado")
	return uc.myPlan(company, sub), nil
}

func (uc *PlanUseCase) ensureCompany(ctx context.Context, tx ports.Repos, user *entity.User) (*entity.Company, error) {
	if user.CompanyID != "" {
		c, err := tx.Companies.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	rut := user.RUT
	if rut == "" {
		rut = placeholderRUT
	}
	c := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Cuenta " + user.Username,
		RUT:       rut,
		CreatedAt: uc.d.Now(),
	}
	if err := uc.d.check("company", validation.Company(c, uc.d.now())); err != nil {
		return nil, err
	}
	if err := tx.Companies.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear cuenta personal: %w", err)
	}
	user.CompanyID = c.ID
	if err := tx.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("asociar usuario a su cuenta: %w", err)
	}
	return c, nil
}

// Mine plan vigente de la empresa del usuario ("Sin Plan" si no tiene).
func (uc *PlanUseCase) Mine(ctx context.Context, p entity.Principal) (*dto.MyPlanResponse, error) {
	if p.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.d.Repos.Users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.CompanyID == "" {
		return &dto.MyPlanResponse{Plan: "", Label: entitlement.NoPlanLabel}, nil
	}
	company, err := uc.d.Repos.Companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	sub, err := uc.d.Repos.Subscriptions.GetByCompany(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.myPlan(company, sub), nil
}

func (uc *PlanUseCase) myPlan(company *entity.Company, sub *entity.Subscription) *dto.MyPlanResponse {
	out := &dto.MyPlanResponse{Label: entitlement.NoPlanLabel, Company: toCompanyResponse(company), Subscription: toSubscriptionResponse(sub)}
	if sub != nil && sub.Active {
		if tier, err := uc.d.Resolver.Catalog().ParseTier(sub.Plan); err == nil {
			out.Plan = string(tier)
			out.Label = uc.d.Resolver.Catalog().Label(tier)
		}
	}
	out.Expired = expired(sub, uc.d.today())
	return out
}
