package transcription

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/inference"
	"kuro-ml/internal/shared/server/respond"
)

// Transcriber is the behaviour the HTTP handler needs from a Service.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, size ModelSize) (*Transcript, error)
}

// Handler wires HTTP handlers to a Transcriber.
type Handler struct {
	Svc     Transcriber
	Metrics inference.Recorder
}

// NewHandler constructs a Handler.
func NewHandler(svc Transcriber, m inference.Recorder) *Handler {
	return &Handler{Svc: svc, Metrics: m}
}

// RegisterRoutes attaches transcription routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transcriptions", h.transcribe)
}

type transcribeRequest struct {
	AudioPath string `json:"audioPath" binding:"required"`
	ModelSize string `json:"modelSize"`
}

func (h *Handler) transcribe(c *gin.Context) {
	var req transcribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		inference.BadRequest(c, inference.OpTranscription, "audioPath is required")
		return
	}

	var size ModelSize
	if req.ModelSize != "" {
		parsed, err := ParseModelSize(req.ModelSize)
		if err != nil {
			inference.BadRequest(c, inference.OpTranscription, err.Error())
			return
		}
		size = parsed
	}

	start := time.Now()
	transcript, err := h.Svc.Transcribe(c.Request.Context(), req.AudioPath, size)
	inference.Observe(h.Metrics, inference.OpTranscription, start, err)
	if err != nil {
		inference.Fail(c, inference.OpTranscription, err)
		return
	}

	respond.JSON(c, http.StatusOK, transcript)
}
