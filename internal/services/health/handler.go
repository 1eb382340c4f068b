package health

import (
	"github.com/gin-gonic/gin"

	"kuro-ml/internal/shared/server/respond"
)

// Handler serves the liveness endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches GET /health and GET / to r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, h.Svc.Status())
	})
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, h.Svc.Greeting())
	})
}
