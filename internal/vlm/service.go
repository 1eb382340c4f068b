package vlm

import (
	"context"

	"kuro-ml/internal/inference"
)

const (
	DefaultFPS       = 1
	DefaultNumFrames = 30
)

// AnalyzeOptions controls frame sampling. Zero fields take the defaults.
type AnalyzeOptions struct {
	FPS       int `json:"fps"`
	NumFrames int `json:"numFrames"`
}

// DefaultOptions samples one frame per second, up to 30 frames.
func DefaultOptions() AnalyzeOptions {
	return AnalyzeOptions{FPS: DefaultFPS, NumFrames: DefaultNumFrames}
}

// withDefaults fills zero fields from base.
func (o AnalyzeOptions) withDefaults(base AnalyzeOptions) AnalyzeOptions {
	if o.FPS == 0 {
		o.FPS = base.FPS
	}
	if o.NumFrames == 0 {
		o.NumFrames = base.NumFrames
	}
	return o
}

// VideoAnalysis is a vision-language model's reading of a video.
type VideoAnalysis struct {
	Description string             `json:"description"`
	Content     []string           `json:"content"`
	Confidence  map[string]float64 `json:"confidence"`
}

// Service analyses videos with a vision-language model.
type Service struct {
	Model    string
	Defaults AnalyzeOptions
}

// NewService constructs a Service. Zero fields in defaults take the package
// defaults.
func NewService(model string, defaults AnalyzeOptions) *Service {
	return &Service{Model: model, Defaults: defaults.withDefaults(DefaultOptions())}
}

// Options resolves opts against the service defaults.
func (s *Service) Options(opts AnalyzeOptions) AnalyzeOptions {
	return opts.withDefaults(s.Defaults.withDefaults(DefaultOptions()))
}

// AnalyzeVideo samples frames from the video at videoPath and describes them.
// Zero fields in opts resolve through Options.
//
// No vision-language backend exists yet: every call fails with
// inference.ErrNotImplemented and returns no partial analysis.
func (s *Service) AnalyzeVideo(ctx context.Context, videoPath string, opts AnalyzeOptions) (*VideoAnalysis, error) {
	return nil, inference.NotImplemented(inference.OpVideoAnalysis)
}
