package transcription

import (
	"context"

	"kuro-ml/internal/inference"
)

// Service transcribes speech from audio and video files.
type Service struct {
	DefaultSize ModelSize
}

// NewService constructs a Service. An empty size falls back to base.
func NewService(size ModelSize) *Service {
	if size == "" {
		size = DefaultModelSize
	}
	return &Service{DefaultSize: size}
}

// ResolveSize returns size, or the service default when size is empty.
func (s *Service) ResolveSize(size ModelSize) ModelSize {
	if size != "" {
		return size
	}
	if s.DefaultSize != "" {
		return s.DefaultSize
	}
	return DefaultModelSize
}

// Transcribe returns the transcript of the file at audioPath, using the
// Whisper checkpoint named by size.
//
// No transcription backend exists yet: every call fails with
// inference.ErrNotImplemented and the file is never opened.
func (s *Service) Transcribe(ctx context.Context, audioPath string, size ModelSize) (*Transcript, error) {
	return nil, inference.NotImplemented(inference.OpTranscription)
}
