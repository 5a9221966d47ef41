package audiochunk

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=audio_chunk_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Create(ctx context.Context, chunk *AudioChunk) error
	// SearchSimilar returns the chunks of a room whose similarity to the
	// query embedding is strictly greater than threshold, most similar
	// first, capped at limit. An empty result is not an error.
	SearchSimilar(ctx context.Context, roomID uuid.UUID, embedding []float32, threshold float64, limit int) ([]SimilarChunk, error)
}
