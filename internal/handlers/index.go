package handlers

import (
	"github.com/gofiber/fiber/v3"

	"careerguide/internal/config"
)

// IndexHandler serves the chat page.
type IndexHandler struct {
	cfg *config.Config
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(cfg *config.Config) *IndexHandler {
	return &IndexHandler{cfg: cfg}
}

// Show renders the chat page.
func (h *IndexHandler) Show(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Chat",
	}, h.cfg))
}
