package handlers

import (
	"github.com/gofiber/fiber/v2"

	"smarthire/internal/models"
)

// ProviderReporter exposes the configured state of each provider tier.
type ProviderReporter interface {
	ProviderHealth() []models.ProviderHealth
}

type HealthHandler struct {
	reporter ProviderReporter
}

func NewHealthHandler(reporter ProviderReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// HandleHealth handles GET /health. The per-provider booleans reflect
// configuration only, not live reachability.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	providers := make(map[string]bool)
	for _, p := range h.reporter.ProviderHealth() {
		providers[p.Name] = p.Configured
	}

	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Service:   "SmartHire Backend",
		Providers: providers,
	})
}
