package postgres

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/domain"
)

func TestWriteErr(t *testing.T) {
	assert.NoError(t, writeErr("insert", nil))

	dup := writeErr("insert branch", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, dup, domain.ErrDuplicate)
	assert.Contains(t, dup.Error(), "insert branch")

	fk := writeErr("delete product", &pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, fk, domain.ErrProtected)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(fk, &pgErr), "el error original se conserva")

	badRef := writeErr("insert sale", &pgconn.PgError{Code: "22P02"})
	assert.ErrorIs(t, badRef, domain.ErrInvalidInput)

	other := writeErr("update", errors.New("conexión cerrada"))
	assert.False(t, errors.Is(other, domain.ErrDuplicate))
	assert.False(t, errors.Is(other, domain.ErrProtected))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.NewCommandTag("DELETE 0")), domain.ErrNotFound)
	assert.NoError(t, affected(pgconn.NewCommandTag("UPDATE 1")))
}

func TestUUIDMalFormado(t *testing.T) {
	bad := &pgconn.PgError{Code: "22P02"}

	assert.True(t, missing(bad), "un id que no es UUID se trata como fila inexistente")
	assert.True(t, missing(pgx.ErrNoRows))
	assert.False(t, missing(errors.New("timeout")))

	read := readErr("list inventory", bad)
	assert.ErrorIs(t, read, domain.ErrNotFound)
	assert.NotErrorIs(t, read, domain.ErrInvalidInput)

	del := deleteErr("delete product", bad)
	assert.ErrorIs(t, del, domain.ErrNotFound)
	assert.ErrorIs(t, deleteErr("delete product", &pgconn.PgError{Code: "23503"}), domain.ErrProtected)

	plain := readErr("list sales", errors.New("conexión cerrada"))
	assert.NotErrorIs(t, plain, domain.ErrNotFound)
}

// Una columna convertida a texto en el WHERE impide usar sus índices.
func TestConsultasComparanUUIDSinConvertirColumnas(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	castColumn := regexp.MustCompile(`[a-z_.]+::text\s*(=|<>)`)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Empty(t, castColumn.FindAllString(string(src), -1), name)
	}
}
