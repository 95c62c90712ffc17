package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
	"github.com/jhoicas/Temucosoft-api/internal/domain/validation"
	"github.com/jhoicas/Temucosoft-api/pkg/rut"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Los nombres de campo en los errores son los del JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return rut.Validate(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
		return validation.SKU("", fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return validation.Password("", fl.Field().String()) == nil
	})
	return v
}

// Validate valida la forma de un request (tags `validate`). Devuelve *domain.ValidationError
// con una violación por campo; las reglas de negocio se verifican después en el caso de uso.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, domain.Violation{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateSaleRequest.items[0].quantity" → "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return validation.MsgRequired
	case "email":
		return validation.MsgEmail
	case "rut":
		return validation.MsgRUTFormat
	case "sku":
		return validation.MsgSKU
	case "password":
		return validation.MsgPassword
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Debe tener al menos %s elemento(s).", fe.Param())
		}
		return fmt.Sprintf("Debe ser al menos %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Debe tener como máximo %s caracteres.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s.", fe.Param())
	case "uuid":
		return "Identificador inválido."
	case "datetime":
		return fmt.Sprintf("Fecha inválida, use el formato %s.", fe.Param())
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}
