package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthire/internal/models"
)

type stubReporter struct {
	health []models.ProviderHealth
}

func (s *stubReporter) ProviderHealth() []models.ProviderHealth { return s.health }

func TestHandleHealth(t *testing.T) {
	reporter := &stubReporter{health: []models.ProviderHealth{
		{Name: "groq", Configured: true},
		{Name: "gemini", Configured: false},
	}}

	app := fiber.New()
	app.Get("/health", NewHealthHandler(reporter).HandleHealth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "SmartHire Backend", result.Service)
	assert.Equal(t, map[string]bool{"groq": true, "gemini": false}, result.Providers)
}

func TestHandleHealthNoProviders(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler(&stubReporter{}).HandleHealth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Empty(t, result.Providers)
}
