package audiochunk

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// EmbeddingDimension must match the embedding model output. Gemini
// text-embedding-004 produces 768-dimensional vectors.
const EmbeddingDimension = 768

// AudioChunk is a transcription fragment of a room recording with its
// embedding vector. Chunks are written by the ingestion path and read-only
// for the question pipeline.
type AudioChunk struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomID        uuid.UUID       `json:"room_id" gorm:"type:uuid;not null;index"`
	Transcription string          `json:"transcription" gorm:"not null"`
	Embedding     pgvector.Vector `json:"-" gorm:"type:vector(768);not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (a *AudioChunk) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}

func (a *AudioChunk) Validate() error {
	if a.RoomID == uuid.Nil {
		return fmt.Errorf("room_id is required")
	}
	if a.Transcription == "" {
		return fmt.Errorf("transcription is required")
	}
	if len(a.Embedding.Slice()) != EmbeddingDimension {
		return fmt.Errorf("embedding must have %d dimensions, got %d", EmbeddingDimension, len(a.Embedding.Slice()))
	}
	return nil
}

func (a *AudioChunk) TableName() string {
	return "audio_chunks"
}

// SimilarChunk is one retrieval hit: a transcription and its cosine
// similarity (1 - distance) to the query embedding.
type SimilarChunk struct {
	ID            uuid.UUID `json:"id"`
	Transcription string    `json:"transcription"`
	Similarity    float64   `json:"similarity"`
}
