package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsYMensaje(t *testing.T) {
	err := fmt.Errorf("crear producto: %w", &ValidationError{Violations: []Violation{
		{Field: "price", Message: "El precio no puede ser negativo."},
		{Field: "sku", Message: "Formato SKU inválido. Use AAA-0000"},
	}})

	assert.True(t, errors.Is(err, ErrValidation))
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 2)
	assert.Contains(t, err.Error(), "price: El precio no puede ser negativo.")
}

func TestQuotaExceededError(t *testing.T) {
	err := &QuotaExceededError{Resource: "branches", Limit: 1, Tier: "Basico"}
	assert.True(t, errors.Is(err, ErrQuotaExceeded))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "El Plan Basico permite máximo 1 sucursal(es).", err.Error())

	sinPlan := &QuotaExceededError{Resource: "branches", Limit: 1}
	assert.Equal(t, "El Plan actual permite máximo 1 sucursal(es).", sinPlan.Error())
}
