package vlm

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/inference"
	"kuro-ml/internal/shared/server/respond"
)

// Analyzer is the behaviour the HTTP handler needs from a Service.
type Analyzer interface {
	AnalyzeVideo(ctx context.Context, videoPath string, opts AnalyzeOptions) (*VideoAnalysis, error)
}

// Handler wires HTTP handlers to an Analyzer.
type Handler struct {
	Svc     Analyzer
	Metrics inference.Recorder
}

// NewHandler constructs a Handler.
func NewHandler(svc Analyzer, m inference.Recorder) *Handler {
	return &Handler{Svc: svc, Metrics: m}
}

// RegisterRoutes attaches video analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/vlm/analyze", h.analyze)
}

type analyzeRequest struct {
	VideoPath string `json:"videoPath" binding:"required"`
	FPS       int    `json:"fps"`
	NumFrames int    `json:"numFrames"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		inference.BadRequest(c, inference.OpVideoAnalysis, "videoPath is required")
		return
	}

	opts := AnalyzeOptions{FPS: req.FPS, NumFrames: req.NumFrames}

	start := time.Now()
	analysis, err := h.Svc.AnalyzeVideo(c.Request.Context(), req.VideoPath, opts)
	inference.Observe(h.Metrics, inference.OpVideoAnalysis, start, err)
	if err != nil {
		inference.Fail(c, inference.OpVideoAnalysis, err)
		return
	}

	respond.JSON(c, http.StatusOK, analysis)
}
