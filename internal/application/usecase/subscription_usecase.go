package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

// SubscriptionUseCase alta y cambio de plan de las empresas.
type SubscriptionUseCase struct {
	d Deps
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(d Deps) *SubscriptionUseCase {
	return &SubscriptionUseCase{d: d.withDefaults()}
}

// Subscribe crea o reemplaza la suscripción de la empresa. Toma el mismo bloqueo que la
// creación de sucursales, así un cambio de plan nunca se intercala con una creación.
func (uc *SubscriptionUseCase) Subscribe(ctx context.Context, companyID string, in dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	var out *entity.Subscription
	err := uc.d.Tx.Run(ctx, func(tx ports.Repos) error {
		s, err := uc.subscribeInTx(ctx, tx, companyID, in)
		out = s
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.d.Log.Info().Str("company_id", companyID).Str("plan", out.Plan).Bool("active", out.Active).Msg("suscripción actualizada")
	return toSubscriptionResponse(out), nil
}

func (uc *SubscriptionUseCase) subscribeInTx(ctx context.Context, tx ports.Repos, companyID string, in dto.SubscribeRequest) (*entity.Subscription, error) {
	if err := uc.d.Enforcer.LockTenant(ctx, tx, companyID); err != nil {
		return nil, err
	}
	tier, err := uc.d.Resolver.Catalog().ParseTier(in.Plan)
	if err != nil {
		return nil, domain.NewValidationError("plan", "Plan inválido.")
	}
	today := uc.d.today()
	start, err := parseDate(in.StartDate, today)
	if err != nil {
		return nil, domain.NewValidationError("start_date", "Fecha inválida.")
	}
	end, err := parseDate(in.EndDate, start.AddDate(0, 0, uc.d.TrialDays))
	if err != nil {
		return nil, domain.NewValidationError("end_date", "Fecha inválida.")
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	s := &entity.Subscription{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Plan:      string(tier),
		StartDate: start,
		EndDate:   end,
		Active:    active,
	}
	if err := uc.d.check("subscription", validation.Subscription(s, uc.d.now())); err != nil {
		return nil, err
	}
	if err := tx.Subscriptions.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar suscripción: %w", err)
	}
	return s, nil
}

// Upsert variante con la empresa en el cuerpo (/api/subscriptions).
func (uc *SubscriptionUseCase) Upsert(ctx context.Context, in dto.UpsertSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	return uc.Subscribe(ctx, in.CompanyID, in.Subscribe())
}

// GetByID obtiene una suscripción.
func (uc *SubscriptionUseCase) GetByID(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	s, err := uc.d.Repos.Subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(s), nil
}

// List lista suscripciones.
func (uc *SubscriptionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SubscriptionListResponse, error) {
	page.Normalize()
	list, err := uc.d.Repos.Subscriptions.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubscriptionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubscriptionResponse(s))
	}
	return &dto.SubscriptionListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// expired informa si la vigencia terminó (solo informativo: el acceso depende de Active).
func expired(s *entity.Subscription, today time.Time) bool {
	return s != nil && s.EndDate.Before(today)
}
