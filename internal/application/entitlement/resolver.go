// Package entitlement resuelve el plan vigente de una empresa y aplica los límites que
// ese plan impone (funcionalidades y cantidad de sucursales).
package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

// NoPlanLabel se muestra cuando la empresa no tiene suscripción activa.
const NoPlanLabel = "Sin Plan"

// Resolver traduce empresa o usuario → plan vigente.
type Resolver struct {
	catalog *plan.Catalog
	subs    repository.SubscriptionRepository
	users   repository.UserRepository
	log     *logger.Logger
}

// NewResolver construye el resolver con el catálogo y los repositorios de lectura.
func NewResolver(catalog *plan.Catalog, subs repository.SubscriptionRepository, users repository.UserRepository, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{catalog: catalog, subs: subs, users: users, log: log}
}

// Catalog catálogo con el que se construyó el resolver.
func (r *Resolver) Catalog() *plan.Catalog { return r.catalog }

// ResolvePlan devuelve el plan de la empresa o "" si no tiene suscripción activa.
func (r *Resolver) ResolvePlan(ctx context.Context, companyID string) (plan.Tier, error) {
	return resolveTier(ctx, r.catalog, r.subs, r.log, companyID)
}

// ResolvePlanForPrincipal resuelve el plan de la empresa actual del usuario. Se lee el
// usuario de la base porque la empresa pudo cambiar después de emitido el token.
func (r *Resolver) ResolvePlanForPrincipal(ctx context.Context, p entity.Principal) (plan.Tier, error) {
	companyID, err := r.companyOf(ctx, p)
	if err != nil {
		return "", err
	}
	return r.ResolvePlan(ctx, companyID)
}

// HasFeature informa si la empresa tiene la funcionalidad. Funcionalidad desconocida → false.
func (r *Resolver) HasFeature(ctx context.Context, companyID string, f plan.Feature) (bool, error) {
	if _, ok := r.catalog.Requirement(f); !ok {
		return false, nil
	}
	tier, err := r.ResolvePlan(ctx, companyID)
	if err != nil {
		return false, err
	}
	return r.catalog.HasFeature(tier, f), nil
}

// BranchLimit límite de sucursales de la empresa y el plan del que proviene ("" = sin plan).
func (r *Resolver) BranchLimit(ctx context.Context, companyID string) (plan.Limit, plan.Tier, error) {
	tier, err := r.ResolvePlan(ctx, companyID)
	if err != nil {
		return plan.Limit{}, "", err
	}
	return r.catalog.BranchLimit(tier), tier, nil
}

// MenuFlags banderas que el frontend usa para mostrar u ocultar secciones.
type MenuFlags struct {
	HasStandardReports bool
	HasAdvancedReports bool
	BranchLimit        plan.Limit
	Role               string
	Plan               string // etiqueta del plan o NoPlanLabel
	Tier               plan.Tier
}

// MenuFlags calcula las banderas del menú para el usuario autenticado.
func (r *Resolver) MenuFlags(ctx context.Context, p entity.Principal) (MenuFlags, error) {
	tier, err := r.ResolvePlanForPrincipal(ctx, p)
	if err != nil {
		return MenuFlags{}, err
	}
	label := NoPlanLabel
	if tier != "" {
		label = r.catalog.Label(tier)
	}
	return MenuFlags{
		HasStandardReports: r.catalog.HasFeature(tier, plan.StandardReports),
		HasAdvancedReports: r.catalog.HasFeature(tier, plan.AdvancedReports),
		BranchLimit:        r.catalog.BranchLimit(tier),
		Role:               p.Role,
		Plan:               label,
		Tier:               tier,
	}, nil
}

func (r *Resolver) companyOf(ctx context.Context, p entity.Principal) (string, error) {
	if p.UserID == "" || r.users == nil {
		return p.CompanyID, nil
	}
	u, err := r.users.GetByID(ctx, p.UserID)
	if err != nil {
		return "", fmt.Errorf("resolver usuario: %w", err)
	}
	if u == nil {
		return p.CompanyID, nil
	}
	return u.CompanyID, nil
}

// resolveTier lee la suscripción con el repositorio recibido (pool o tx).
// Un nombre de plan que el catálogo no reconoce cuenta como sin plan.
func resolveTier(ctx context.Context, catalog *plan.Catalog, subs repository.SubscriptionRepository, log *logger.Logger, companyID string) (plan.Tier, error) {
	if companyID == "" {
		return "", nil
	}
	s, err := subs.GetByCompany(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("leer suscripción: %w", err)
	}
	if s == nil || !s.Active {
		return "", nil
	}
	tier, err := catalog.ParseTier(s.Plan)
	if err != nil {
		if errors.Is(err, plan.ErrUnknownTier) {
			log.Warn().Str("company_id", companyID).Str("plan", s.Plan).Msg("suscripción con plan desconocido")
			return "", nil
		}
		return "", err
	}
	return tier, nil
}
