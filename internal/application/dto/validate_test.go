package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
)

func TestValidate_NombresDeCampoJSON(t *testing.T) {
	err := Validate(CreateSaleRequest{Items: []LineItemRequest{{Quantity: 1}}})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"branch", "items[0].product"}, fields)
}

func TestValidate_TagsPropios(t *testing.T) {
	err := Validate(RegisterRequest{Username: "ana", Email: "ana@example.cl", Password: "corta"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "password", ve.Violations[0].Field)
	assert.Equal(t, validation.MsgPassword, ve.Violations[0].Message)

	assert.NoError(t, Validate(RegisterRequest{Username: "ana", Email: "ana@example.cl", Password: "clave2025"}))
}

func TestValidate_VentaSinLineas(t *testing.T) {
	err := Validate(CreateSaleRequest{BranchID: "b1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPageRequest_Normalize(t *testing.T) {
	p := PageRequest{Limit: 0, Offset: -3}
	p.Normalize()
	assert.Equal(t, PageRequest{Limit: DefaultLimit, Offset: 0}, p)

	p = PageRequest{Limit: 500}
	p.Normalize()
	assert.Equal(t, MaxLimit, p.Limit)
}
