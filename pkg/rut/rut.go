// Package rut valida y formatea el RUT chileno (Rol Único Tributario).
//
// El dígito verificador se calcula con módulo 11 sobre el cuerpo, de derecha a izquierda,
// con pesos cíclicos 2..7. Resultado 11 → "0", 10 → "K", resto → el dígito.
package rut

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrFormat el texto no tiene forma de RUT (Ej: 12.345.678-K).
	ErrFormat = errors.New("rut: formato inválido")
	// ErrCheckDigit el dígito verificador no corresponde al cuerpo.
	ErrCheckDigit = errors.New("rut: dígito verificador no corresponde")
)

// Acepta puntos y guion opcionales: 12.345.678-5, 12345678-5, 123456785.
var formatPattern = regexp.MustCompile(`^(\d{1,3}(?:\.?\d{3}){2}-?[\dkK])$`)

// Validate valida formato y dígito verificador. Un RUT vacío es válido (la obligatoriedad
// es una regla aparte).
func Validate(s string) error {
	if s == "" {
		return nil
	}
	if !formatPattern.MatchString(s) {
		return ErrFormat
	}
	body, dv := split(Normalize(s))
	expected, err := Compute(body)
	if err != nil {
		return err
	}
	if expected != dv {
		return fmt.Errorf("%w: esperado %c, recibido %c", ErrCheckDigit, expected, dv)
	}
	return nil
}

// Compute calcula el dígito verificador ('0'..'9' o 'K') para un cuerpo numérico.
func Compute(body string) (byte, error) {
	if body == "" {
		return 0, ErrFormat
	}
	sum, weight := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, ErrFormat
		}
		sum += int(c-'0') * weight
		weight++
		if weight == 8 {
			weight = 2
		}
	}
	switch res := 11 - sum%11; res {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + res), nil
	}
}

// Normalize quita puntos y guion y pasa la "k" a mayúscula: "12.345.678-k" → "12345678K".
func Normalize(s string) string {
	s = strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(s))
	return strings.ToUpper(s)
}

// Format devuelve el RUT con separadores de miles y guion: "123456785" → "12.345.678-5".
// Si el texto no es un RUT válido se devuelve sin cambios.
func Format(s string) string {
	if Validate(s) != nil || s == "" {
		return s
	}
	body, dv := split(Normalize(s))
	var b strings.Builder
	for i := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(body[i])
	}
	b.WriteByte('-')
	b.WriteByte(dv)
	return b.String()
}

func split(clean string) (string, byte) {
	return clean[:len(clean)-1], clean[len(clean)-1]
}
