package handlers

import (
	"github.com/gofiber/fiber/v3"

	"careerguide/internal/fallback"
	"careerguide/internal/models"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	table                *fallback.Table
	completionConfigured bool
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(table *fallback.Table, completionConfigured bool) *ProbeHandler {
	return &ProbeHandler{table: table, completionConfigured: completionConfigured}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Reports whether replies come from the model or only from the fallback table.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	if h.table == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ProbeResponse{Status: "error"})
	}
	completion := "unconfigured"
	if h.completionConfigured {
		completion = "configured"
	}
	return c.JSON(models.ProbeResponse{
		Status:          "ok",
		Completion:      completion,
		FallbackEntries: h.table.Len(),
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// The service can always answer from the fallback table, so readiness only
// requires that the table was built.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.table == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ProbeResponse{Status: "error"})
	}
	return c.JSON(models.ProbeResponse{Status: "ok"})
}
