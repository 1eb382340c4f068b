package embeddings

import (
	"context"

	"kuro-ml/internal/inference"
)

// Service produces embedding vectors for semantic search.
type Service struct {
	// Model names the embedding model a backend would load. It is reported
	// only, never loaded.
	Model string
}

// NewService constructs a Service for the named model.
func NewService(model string) *Service {
	return &Service{Model: model}
}

// GenerateEmbedding returns the embedding vector for text.
//
// Not implemented yet: always returns inference.ErrNotImplemented.
func (s *Service) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, inference.NotImplemented(inference.OpTextEmbedding)
}

// GenerateVisualEmbedding returns the embedding vector for the image at
// imagePath.
//
// Not implemented yet: always returns inference.ErrNotImplemented without
// touching the filesystem.
func (s *Service) GenerateVisualEmbedding(ctx context.Context, imagePath string) ([]float32, error) {
	return nil, inference.NotImplemented(inference.OpImageEmbedding)
}
