package server

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/embeddings"
	"kuro-ml/internal/services/health"
	"kuro-ml/internal/shared/config"
	"kuro-ml/internal/shared/metrics"
	"kuro-ml/internal/shared/server/middleware"
	"kuro-ml/internal/shared/server/respond"
	"kuro-ml/internal/transcription"
	"kuro-ml/internal/vlm"
)

const defaultRateLimitGroup = "INFERENCE"

// RouterDeps carries the handlers the router mounts. Nil handlers are skipped.
type RouterDeps struct {
	Config               config.Config
	Metrics              *metrics.Metrics
	HealthHandler        *health.Handler
	EmbeddingsHandler    *embeddings.Handler
	TranscriptionHandler *transcription.Handler
	VLMHandler           *vlm.Handler
	RateLimiter          *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	var observer middleware.RequestObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}
	r.Use(
		middleware.RequestID(),
		middleware.Instrument(observer),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(r)
	}
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: defaultRateLimitGroup,
		Limiter:      deps.RateLimiter,
		Rules: map[string]middleware.RateLimitRule{
			defaultRateLimitGroup: {Rate: cfg.RateLimit.RPS, Burst: cfg.RateLimit.Burst},
		},
	}))
	if deps.EmbeddingsHandler != nil {
		deps.EmbeddingsHandler.RegisterRoutes(v1)
	}
	if deps.TranscriptionHandler != nil {
		deps.TranscriptionHandler.RegisterRoutes(v1)
	}
	if deps.VLMHandler != nil {
		deps.VLMHandler.RegisterRoutes(v1)
	}

	return r
}

// Addr joins host and port into a listen address.
func Addr(host, port string) string {
	host = strings.TrimSpace(host)
	port = strings.TrimPrefix(strings.TrimSpace(port), ":")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "8321"
	}
	return net.JoinHostPort(host, port)
}
