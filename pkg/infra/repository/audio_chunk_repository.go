package repository

import (
	"context"
	"fmt"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/audiochunk"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type AudioChunkRepository struct {
	db *gorm.DB
}

func NewAudioChunkRepository(db *gorm.DB) audiochunk.Repository {
	return &AudioChunkRepository{
		db: db,
	}
}

func (r *AudioChunkRepository) Create(ctx context.Context, chunk *audiochunk.AudioChunk) error {
	result := r.db.WithContext(ctx).Create(chunk)
	if result.Error != nil {
		return domain.NewPersistenceError("audio chunk", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewPersistenceError("audio chunk", fmt.Errorf("no row created"))
	}
	return nil
}

// SearchSimilar ranks a room's chunks by cosine similarity to the query
// embedding. pgvector's <=> operator yields cosine distance, so similarity is
// 1 - distance; ordering by distance ascending puts the most similar chunk
// first. The threshold comparison is strict.
func (r *AudioChunkRepository) SearchSimilar(
	ctx context.Context,
	roomID uuid.UUID,
	embedding []float32,
	threshold float64,
	limit int,
) ([]audiochunk.SimilarChunk, error) {
	vector := pgvector.NewVector(embedding)

	var chunks []audiochunk.SimilarChunk
	err := r.db.WithContext(ctx).Raw(`
SELECT id, transcription, 1 - (embedding <=> ?) AS similarity
FROM audio_chunks
WHERE room_id = ? AND 1 - (embedding <=> ?) > ?
ORDER BY embedding <=> ?
LIMIT ?`,
		vector, roomID, vector, threshold, vector, limit,
	).Scan(&chunks).Error
	if err != nil {
		return nil, fmt.Errorf("audio chunk similarity search: %w", err)
	}
	return chunks, nil
}
