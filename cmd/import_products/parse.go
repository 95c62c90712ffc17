package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
)

// Columnas esperadas (la cabecera es obligatoria, el orden no).
var requiredColumns = []string{"sku", "nombre", "precio"}

// rowError error de una fila concreta del archivo.
type rowError struct {
	Line int
	Err  error
}

func (e rowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// readProducts lee el catálogo separado por ';' (formato de Excel en es-CL).
// Con latin1 el archivo se decodifica desde ISO-8859-1. Devuelve las filas válidas y
// los errores de las inválidas; solo falla del todo si la cabecera no sirve.
func readProducts(r io.Reader, latin1 bool) ([]dto.ProductRequest, []rowError, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, nil, fmt.Errorf("falta la columna %q", c)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		out  []dto.ProductRequest
		errs []rowError
	)
	line := 1
	for {
		rec, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, rowError{Line: line, Err: err})
			continue
		}
		price, err := parseAmount(field(rec, "precio"))
		if err != nil {
			errs = append(errs, rowError{Line: line, Err: fmt.Errorf("precio: %w", err)})
			continue
		}
		cost, err := parseAmount(field(rec, "costo"))
		if err != nil {
			errs = append(errs, rowError{Line: line, Err: fmt.Errorf("costo: %w", err)})
			continue
		}
		out = append(out, dto.ProductRequest{
			SKU:         field(rec, "sku"),
			Name:        field(rec, "nombre"),
			Description: field(rec, "descripcion"),
			Category:    field(rec, "categoria"),
			Price:       price,
			Cost:        cost,
		})
	}
	return out, errs, nil
}

// parseAmount acepta montos chilenos: "12.990", "$ 1.500", "990,5". Vacío es cero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return decimal.NewFromString(s)
}
