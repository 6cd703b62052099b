package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		checks map[string]HealthCheck
		code   int
		body   string
	}{
		{"all healthy", map[string]HealthCheck{"database": healthy}, http.StatusOK, `"database":"healthy"`},
		{"redis down", map[string]HealthCheck{"database": healthy, "redis": broken}, http.StatusServiceUnavailable, `"redis":"unhealthy"`},
		{"no checks", nil, http.StatusOK, `"api":"healthy"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler("dev", tc.checks).HealthCheck)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
			assert.Contains(t, string(body), tc.body)
		})
	}
}
