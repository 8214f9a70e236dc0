package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

func statusForError(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, aerr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, aerr)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRespondError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"entrada inválida", domain.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"campo inmutable", domain.ErrImmutableField, http.StatusUnprocessableEntity},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound},
		{"saldo insuficiente", domain.ErrInsufficientStock, http.StatusConflict},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict},
		{"email en uso", domain.ErrEmailAlreadyExists, http.StatusConflict},
		{"sin empresa", domain.ErrNoCompany, http.StatusBadRequest},
		{"no eliminado", domain.ErrNotDeleted, http.StatusBadRequest},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden},
		{"no autorizado", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"desconocido", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(t, tc.err))
		})
	}
}
