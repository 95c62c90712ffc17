package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02" // ej: 'abc'::uuid
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isInvalidID 22P02: el id recibido no es un UUID.
func isInvalidID(err error) bool { return pgCode(err) == codeInvalidText }

// missing la fila no existe o el id ni siquiera es un UUID válido.
func missing(err error) bool { return isNoRows(err) || isInvalidID(err) }

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isForeignKeyViolation 23503: borrar una fila todavía referenciada, o insertar una referencia inexistente.
func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// writeErr traduce los errores de escritura a los del dominio conservando el original.
func writeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrDuplicate, err))
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrProtected, err))
	case isInvalidID(err):
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrInvalidInput, err))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// readErr para lecturas: un filtro con id mal formado no puede coincidir con nada.
func readErr(op string, err error) error {
	if isInvalidID(err) {
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrNotFound, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteErr como writeErr, pero el id de la ruta mal formado es un recurso inexistente.
func deleteErr(op string, err error) error {
	if isInvalidID(err) {
		return readErr(op, err)
	}
	return writeErr(op, err)
}

// affected ErrNotFound si la sentencia no tocó filas.
func affected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
