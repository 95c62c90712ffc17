package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// SubscriptionRepository persistencia de suscripciones (una por empresa).
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	GetByCompany(ctx context.Context, companyID string) (*entity.Subscription, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Subscription, error)
	// Upsert crea o reemplaza la suscripción de s.CompanyID; completa s.ID con el valor persistido.
	Upsert(ctx context.Context, s *entity.Subscription) error
}
