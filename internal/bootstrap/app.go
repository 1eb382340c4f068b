package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/embeddings"
	"kuro-ml/internal/services/health"
	"kuro-ml/internal/shared/config"
	"kuro-ml/internal/shared/metrics"
	"kuro-ml/internal/shared/server"
	"kuro-ml/internal/transcription"
	"kuro-ml/internal/vlm"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config               config.Config
	Router               *gin.Engine
	Metrics              *metrics.Metrics
	HealthService        *health.Service
	EmbeddingsService    *embeddings.Service
	TranscriptionService *transcription.Service
	VLMService           *vlm.Service
}

// Build wires services, handlers and routes from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.Models.TranscriptionSize != "" {
		size, err := transcription.ParseModelSize(string(cfg.Models.TranscriptionSize))
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		cfg.Models.TranscriptionSize = size
	}

	m := metrics.New()
	app := &App{
		Config:               cfg,
		Metrics:              m,
		HealthService:        health.NewService(),
		EmbeddingsService:    embeddings.NewService(cfg.Models.Embedding),
		TranscriptionService: transcription.NewService(cfg.Models.TranscriptionSize),
		VLMService: vlm.NewService(cfg.Models.VLM, vlm.AnalyzeOptions{
			FPS:       cfg.Models.VLMFPS,
			NumFrames: cfg.Models.VLMNumFrames,
		}),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               cfg,
		Metrics:              m,
		HealthHandler:        health.NewHandler(app.HealthService),
		EmbeddingsHandler:    embeddings.NewHandler(app.EmbeddingsService, m),
		TranscriptionHandler: transcription.NewHandler(app.TranscriptionService, m),
		VLMHandler:           vlm.NewHandler(app.VLMService, m),
	})

	return app, nil
}
