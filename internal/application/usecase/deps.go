package usecase

import (
	"time"

	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/application/ports"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

// ValidationObserver recibe las escrituras rechazadas por validación (métricas).
type ValidationObserver interface {
	ValidationFailed(entity string, violations int)
}

// Deps dependencias compartidas por los casos de uso.
type Deps struct {
	Repos     ports.Repos // atados al pool, para lecturas
	Tx        ports.TxRunner
	Resolver  *entitlement.Resolver
	Enforcer  *entitlement.Enforcer
	Log       *logger.Logger
	Observer  ValidationObserver
	Location  *time.Location // zona del negocio para fechas de calendario
	TrialDays int            // vigencia al seleccionar un plan
	Now       func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Location == nil {
		d.Location = time.UTC
	}
	if d.TrialDays <= 0 {
		d.TrialDays = 30
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// now hora actual en la zona del negocio.
func (d Deps) now() time.Time {
	return d.Now().In(d.Location)
}

// today fecha de hoy en la zona del negocio, como medianoche UTC (columna DATE).
func (d Deps) today() time.Time {
	return dateOnly(d.now())
}

// check corre la validación de una entidad y notifica al observer si falla.
func (d Deps) check(entity string, vs []validation.Violation) error {
	if len(vs) > 0 && d.Observer != nil {
		d.Observer.ValidationFailed(entity, len(vs))
	}
	return validation.Check(vs)
}

// dateOnly conserva año, mes y día tal como están en t.
func dateOnly(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// parseDate interpreta una fecha 2006-01-02; vacío devuelve def.
func parseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.Parse(time.DateOnly, s)
}
