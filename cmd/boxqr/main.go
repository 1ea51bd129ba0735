package main

import (
	"log"
	"log/slog"

	"github.com/vbonduro/boxqr/internal/assist"
	claudeassist "github.com/vbonduro/boxqr/internal/assist/claude"
	"github.com/vbonduro/boxqr/internal/config"
	"github.com/vbonduro/boxqr/internal/logging"
	"github.com/vbonduro/boxqr/internal/service"
	"github.com/vbonduro/boxqr/internal/store"
	"github.com/vbonduro/boxqr/internal/web"
	"github.com/vbonduro/boxqr/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	boxStore := store.NewBoxStore(cfg.DataPath)
	normalizer := newNormalizer(cfg, logger)

	svc := service.NewBoxService(boxStore, normalizer, cfg.BaseURL, logger)
	server := web.NewServer(svc, templates.FS, cfg.AdminPIN, normalizer != nil, logger)

	logger.Info("boxqr configured",
		"data_path", cfg.DataPath,
		"base_url", cfg.BaseURL,
		"pin_required", cfg.AdminPIN != "",
	)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newNormalizer returns the configured assist backend, or nil when the
// feature is disabled.
func newNormalizer(cfg *config.Config, logger *slog.Logger) assist.Normalizer {
	switch cfg.AssistBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when ASSIST_BACKEND=claude")
			return nil
		}
		logger.Info("using Claude assist backend", "model", cfg.ClaudeModel)
		return claudeassist.NewNormalizer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		return nil
	}
}
