package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrProtected       = errors.New("el recurso está referenciado por otros registros")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrCompanyRequired = errors.New("el usuario no está asociado a una compañía")
	ErrValidation      = errors.New("datos inválidos")
	ErrQuotaExceeded   = errors.New("límite del plan alcanzado")
)

// Violation describe una regla de validación incumplida sobre un campo.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return v.Field + ": " + v.Message
}

// ValidationError agrupa todas las violaciones detectadas en una escritura.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError construye un error de validación de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Message: message}}}
}

// QuotaExceededError indica que el plan de la empresa no admite más recursos del tipo indicado.
type QuotaExceededError struct {
	Resource string // ej: "branches"
	Limit    int
	Tier     string // plan vigente; "" si la empresa no tiene plan activo
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("El Plan %s permite máximo %d sucursal(es).", e.tierLabel(), e.Limit)
}

// Is permite errors.Is(err, ErrQuotaExceeded).
func (e *QuotaExceededError) Is(target error) bool { return target == ErrQuotaExceeded }

func (e *QuotaExceededError) tierLabel() string {
	if e.Tier == "" {
		return "actual"
	}
	return e.Tier
}
