package embeddings

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/inference"
	"kuro-ml/internal/shared/server/respond"
)

// Embedder is the behaviour the HTTP handler needs from a Service.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateVisualEmbedding(ctx context.Context, imagePath string) ([]float32, error)
}

// Handler wires HTTP handlers to an Embedder.
type Handler struct {
	Svc     Embedder
	Metrics inference.Recorder
}

// NewHandler constructs a Handler.
func NewHandler(svc Embedder, m inference.Recorder) *Handler {
	return &Handler{Svc: svc, Metrics: m}
}

// RegisterRoutes attaches embedding routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/embeddings/text", h.embedText)
	rg.POST("/embeddings/image", h.embedImage)
}

type textRequest struct {
	// Text may be empty; the backend decides what an empty input embeds to.
	Text *string `json:"text" binding:"required"`
}

type imageRequest struct {
	ImagePath string `json:"imagePath" binding:"required"`
}

type embeddingResponse struct {
	Embedding  []float32 `json:"embedding"`
	Dimensions int       `json:"dimensions"`
}

func (h *Handler) embedText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		inference.BadRequest(c, inference.OpTextEmbedding, "text is required")
		return
	}

	start := time.Now()
	vec, err := h.Svc.GenerateEmbedding(c.Request.Context(), *req.Text)
	inference.Observe(h.Metrics, inference.OpTextEmbedding, start, err)
	if err != nil {
		inference.Fail(c, inference.OpTextEmbedding, err)
		return
	}

	respond.JSON(c, http.StatusOK, embeddingResponse{Embedding: vec, Dimensions: len(vec)})
}

func (h *Handler) embedImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		inference.BadRequest(c, inference.OpImageEmbedding, "imagePath is required")
		return
	}

	start := time.Now()
	vec, err := h.Svc.GenerateVisualEmbedding(c.Request.Context(), req.ImagePath)
	inference.Observe(h.Metrics, inference.OpImageEmbedding, start, err)
	if err != nil {
		inference.Fail(c, inference.OpImageEmbedding, err)
		return
	}

	respond.JSON(c, http.StatusOK, embeddingResponse{Embedding: vec, Dimensions: len(vec)})
}
