package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/internal/api/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(middleware.Recovery(log))
	e.GET("/panic", func(echo.Context) error {
		panic("boom")
	})
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := doRequest(t, e, http.MethodGet, "/panic", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")

	// The server keeps serving after a recovered panic.
	rec = doRequest(t, e, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
