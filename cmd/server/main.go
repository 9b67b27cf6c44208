package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"careerguide/internal/chat"
	"careerguide/internal/completion"
	"careerguide/internal/config"
	"careerguide/internal/fallback"
	"careerguide/internal/metrics"
	"careerguide/internal/server"
)

func main() {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := config.Load()
	setupLogger(cfg)

	// Fallback table
	responses, err := config.LoadResponsesConfig(cfg.ResponsesFile)
	if err != nil {
		slog.Error("failed to load responses file", "path", cfg.ResponsesFile, "error", err)
		os.Exit(1)
	}
	table, err := fallback.FromConfig(cfg.FallbackLocale, responses)
	if err != nil {
		slog.Error("failed to build fallback table", "locale", cfg.FallbackLocale, "error", err)
		os.Exit(1)
	}
	slog.Info("fallback table ready", "locale", cfg.FallbackLocale, "entries", table.Len())

	// Completion client
	client := completion.New(completion.Options{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.CompletionTimeout,
	})
	if oc, ok := client.(*completion.OpenAI); ok {
		slog.Info("completion enabled", "model", oc.Model(), "timeout", cfg.CompletionTimeout)
	} else if cfg.HasOpenAIKey() {
		slog.Warn("completion client could not be built, replies will come from the fallback table", "base_url", cfg.OpenAIBaseURL)
	} else {
		slog.Warn("OPENAI_API_KEY not set, replies will come from the fallback table")
	}

	if cfg.MetricsEnabled {
		metrics.Init(cfg.FallbackLocale, table.Len())
	}

	responder := chat.NewResponder(client, table, slog.Default())

	srv := server.New(cfg)
	srv.RegisterRoutes(responder, table, slog.Default())

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
