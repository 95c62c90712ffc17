// Package validation reúne las reglas de negocio puras que se verifican antes de
// cualquier escritura. Cada regla devuelve nil o una violación; los validadores por
// entidad acumulan todas las violaciones en orden determinista.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/pkg/rut"
)

// Violation alias para no obligar a importar domain en cada llamada.
type Violation = domain.Violation

// Mensajes expuestos al cliente.
const (
	MsgRequired        = "Este campo es obligatorio."
	MsgNegativePrice   = "El precio no puede ser negativo."
	MsgNegativeCost    = "El costo no puede ser negativo."
	MsgNegativeStock   = "El stock no puede ser negativo."
	MsgNegativeReorder = "El punto de reposición no puede ser negativo."
	MsgNegativeTotal   = "El total no puede ser negativo."
	MsgMinQuantity     = "La cantidad debe ser al menos 1."
	MsgFuturePurchase  = "La fecha de compra no puede estar en el futuro."
	MsgFutureSale      = "La venta no puede ser en el futuro."
	MsgFutureOrder     = "La orden no puede tener fecha futura."
	MsgDateRange       = "La fecha de fin debe ser posterior a la de inicio."
	MsgRUTFormat       = "El formato del RUT no es válido (Ej: 12.345.678-K)."
	MsgRUTCheckDigit   = "RUT inválido. El dígito verificador no corresponde."
	MsgSKU             = "Formato SKU inválido. Use AAA-0000"
	MsgRole            = "Rol inválido."
	MsgRoleCompany     = "Este rol requiere estar asociado a una compañía."
	MsgOrderStatus     = "Estado de orden inválido."
	MsgEmail           = "Ingrese un correo electrónico válido."
	MsgPassword        = "La contraseña debe tener al menos 8 caracteres, incluyendo letras y números."
)

var (
	skuPattern = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)

	passwordChars  = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)
	passwordLetter = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit  = regexp.MustCompile(`\d`)

	// validator es seguro para uso concurrente.
	validate = validator.New()
)

func violation(field, msg string) *Violation {
	return &Violation{Field: field, Message: msg}
}

// Required exige un texto no vacío (ignorando espacios).
func Required(field, s string) *Violation {
	if strings.TrimSpace(s) == "" {
		return violation(field, MsgRequired)
	}
	return nil
}

// RUT valida formato y dígito verificador. Vacío es válido.
func RUT(field, s string) *Violation {
	err := rut.Validate(s)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rut.ErrCheckDigit):
		return violation(field, MsgRUTCheckDigit)
	default:
		return violation(field, MsgRUTFormat)
	}
}

// NotInFuture rechaza instantes posteriores a now.
func NotInFuture(field string, t, now time.Time, msg string) *Violation {
	if t.After(now) {
		return violation(field, msg)
	}
	return nil
}

// NotAfterToday rechaza fechas de calendario posteriores al día de now (en la zona de now).
// El día de d se toma tal como está guardado, sin convertir de zona.
func NotAfterToday(field string, d, now time.Time, msg string) *Violation {
	dy, dm, dd := d.Date()
	ny, nm, nd := now.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if day.After(today) {
		return violation(field, msg)
	}
	return nil
}

// NonNegative rechaza montos negativos.
func NonNegative(field string, d decimal.Decimal, msg string) *Violation {
	if d.IsNegative() {
		return violation(field, msg)
	}
	return nil
}

// NonNegativeInt versión entera de NonNegative.
func NonNegativeInt(field string, n int, msg string) *Violation {
	if n < 0 {
		return violation(field, msg)
	}
	return nil
}

// MinQuantity exige cantidad ≥ 1.
func MinQuantity(field string, q int) *Violation {
	if q < 1 {
		return violation(field, MsgMinQuantity)
	}
	return nil
}

// DateRange exige end estrictamente posterior a start.
func DateRange(field string, start, end time.Time) *Violation {
	if !end.After(start) {
		return violation(field, MsgDateRange)
	}
	return nil
}

// SKU exige el patrón AAA-0000.
func SKU(field, s string) *Violation {
	if !skuPattern.MatchString(s) {
		return violation(field, MsgSKU)
	}
	return nil
}

// Role exige un rol de la lista cerrada.
func Role(field, role string) *Violation {
	for _, r := range entity.Roles {
		if r == role {
			return nil
		}
	}
	return violation(field, MsgRole)
}

// RoleCompany exige empresa para los roles internos de un tenant.
func RoleCompany(field, role, companyID string) *Violation {
	if entity.RequiresCompany(role) && companyID == "" {
		return violation(field, MsgRoleCompany)
	}
	return nil
}

// OrderStatus exige un estado de orden conocido.
func OrderStatus(field, status string) *Violation {
	for _, s := range entity.OrderStatuses {
		if s == status {
			return nil
		}
	}
	return violation(field, MsgOrderStatus)
}

// Email valida formato de correo. Vacío es válido.
func Email(field, email string) *Violation {
	if email == "" {
		return nil
	}
	if err := validate.Var(email, "email"); err != nil {
		return violation(field, MsgEmail)
	}
	return nil
}

// Password mínimo 8 caracteres, al menos una letra y un dígito, solo [A-Za-z\d@$!%*#?&].
func Password(field, pw string) *Violation {
	if !passwordChars.MatchString(pw) || !passwordLetter.MatchString(pw) || !passwordDigit.MatchString(pw) {
		return violation(field, MsgPassword)
	}
	return nil
}

// collect descarta los nil y conserva el orden.
func collect(vs ...*Violation) []Violation {
	var out []Violation
	for _, v := range vs {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Check convierte una lista no vacía en *domain.ValidationError.
func Check(vs []Violation) error {
	if len(vs) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: vs}
}
