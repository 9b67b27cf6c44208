package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"careerguide/internal/chat"
	"careerguide/internal/fallback"
	"careerguide/internal/handlers"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(responder *chat.Responder, table *fallback.Table, logger *slog.Logger) {
	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(s.Cfg)
	chatHandler := handlers.NewChatHandler(responder, logger)
	probeHandler := handlers.NewProbeHandler(table, responder.CompletionConfigured())

	s.App.Get("/", indexHandler.Show)
	s.App.Post("/chat", chatHandler.Chat)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}
