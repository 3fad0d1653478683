package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breadcraft/backoffice/internal/application/dto"
	"github.com/breadcraft/backoffice/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// appWithError construye una app Fiber con una única ruta que responde el
// error dado a través de respondError.
func appWithError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────
// respondError
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondError_EntradaInvalidaEs400(t *testing.T) {
	app := appWithError(domain.NewInvalidInput(domain.CodeInvalidQuantity, "mat-1"))

	status, body := doGet(t, app, "/x")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeInvalidQuantity, body.Code)
	assert.Equal(t, "mat-1", body.AggregateID)
}

func TestRespondError_NoEncontradoEs404(t *testing.T) {
	app := appWithError(domain.NewNotFound(domain.CodeSaleNotFound, "sale-1"))

	status, body := doGet(t, app, "/x")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, domain.CodeSaleNotFound, body.Code)
	assert.Equal(t, "sale-1", body.AggregateID)
}

func TestRespondError_ConflictoEs409(t *testing.T) {
	app := appWithError(domain.NewConflict(domain.CodeOverReturn, "sale-1"))

	status, body := doGet(t, app, "/x")

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, domain.CodeOverReturn, body.Code)
}

func TestRespondError_DuplicadoEs409(t *testing.T) {
	app := appWithError(domain.ErrDuplicate)

	status, body := doGet(t, app, "/x")

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body.Code)
}

func TestRespondError_ErrorDesconocidoEs500(t *testing.T) {
	app := appWithError(errors.New("se cayó la base"))

	status, body := doGet(t, app, "/x")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	// El detalle interno no se filtra al cliente
	assert.Equal(t, "error interno", body.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// pageParams
// ──────────────────────────────────────────────────────────────────────────────

func TestPageParams(t *testing.T) {
	app := fiber.New()
	var limit, offset int
	app.Get("/p", func(c *fiber.Ctx) error {
		limit, offset = pageParams(c)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		name       string
		path       string
		wantLimit  int
		wantOffset int
	}{
		{"por defecto", "/p", 20, 0},
		{"explícitos", "/p?limit=5&offset=10", 5, 10},
		{"límite negativo vuelve al defecto", "/p?limit=-1", 20, 0},
		{"límite acotado a 100", "/p?limit=500", 100, 0},
		{"offset negativo se normaliza", "/p?offset=-3", 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
