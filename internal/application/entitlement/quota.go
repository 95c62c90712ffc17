package entitlement

import (
	"context"
	"fmt"

	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

// ResourceBranches nombre del recurso limitado por plan.
const ResourceBranches = "branches"

// QuotaObserver recibe los rechazos por cuota (métricas).
type QuotaObserver interface {
	QuotaRejected(resource string, tier plan.Tier)
}

// Enforcer aplica el límite de sucursales dentro de la transacción de escritura.
type Enforcer struct {
	catalog  *plan.Catalog
	log      *logger.Logger
	observer QuotaObserver
}

// NewEnforcer construye el enforcer. observer puede ser nil.
func NewEnforcer(catalog *plan.Catalog, log *logger.Logger, observer QuotaObserver) *Enforcer {
	if log == nil {
		log = logger.Nop()
	}
	return &Enforcer{catalog: catalog, log: log, observer: observer}
}

// LockTenant bloquea la fila de la empresa hasta el fin de tx. Creación de sucursales y
// cambio de plan toman este mismo bloqueo, así que nunca se intercalan para una empresa.
func (e *Enforcer) LockTenant(ctx context.Context, tx ports.Repos, companyID string) error {
	if err := tx.Companies.LockForUpdate(ctx, companyID); err != nil {
		return fmt.Errorf("bloquear empresa: %w", err)
	}
	return nil
}

// EnforceBranchQuota debe llamarse en la misma transacción que el insert/update de la
// sucursal. Cuenta las sucursales de la empresa sin excludingBranchID y falla con
// *domain.QuotaExceededError si el límite es finito y ya se alcanzó.
func (e *Enforcer) EnforceBranchQuota(ctx context.Context, tx ports.Repos, companyID, excludingBranchID string) error {
	if err := e.LockTenant(ctx, tx, companyID); err != nil {
		return err
	}
	tier, err := resolveTier(ctx, e.catalog, tx.Subscriptions, e.log, companyID)
	if err != nil {
		return err
	}
	limit := e.catalog.BranchLimit(tier)
	if limit.Unlimited {
		return nil
	}
	count, err := tx.Branches.CountByCompany(ctx, companyID, excludingBranchID)
	if err != nil {
		return fmt.Errorf("contar sucursales: %w", err)
	}
	if limit.Allows(count) {
		return nil
	}

	e.log.Info().
		Str("company_id", companyID).
		Str("plan", string(tier)).
		Int("limit", limit.Max).
		Int("count", count).
		Msg("creación de sucursal rechazada por límite del plan")
	if e.observer != nil {
		e.observer.QuotaRejected(ResourceBranches, tier)
	}
	return &domain.QuotaExceededError{Resource: ResourceBranches, Limit: limit.Max, Tier: string(tier)}
}
