package audio

import (
	"context"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/audiochunk"
	"github.com/askroom/askroom/pkg/domain/embedding"
	"github.com/askroom/askroom/pkg/domain/room"
	"github.com/askroom/askroom/pkg/infra/providers"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
)

type Ingestor interface {
	Ingest(ctx context.Context, roomID uuid.UUID, mimeType string, data []byte) (*IngestResult, error)
}

type IngestResult struct {
	ChunkID       uuid.UUID
	Transcription string
}

type ingestor struct {
	transcriber        providers.Transcriber
	transcriptionModel string
	embedder           embedding.Creator
	roomRepository     room.Repository
	chunkRepository    audiochunk.Repository
	logger             *logrus.Logger
}

func NewIngestor(
	transcriber providers.Transcriber,
	transcriptionModel string,
	embedder embedding.Creator,
	roomRepository room.Repository,
	chunkRepository audiochunk.Repository,
	logger *logrus.Logger,
) Ingestor {
	return &ingestor{
		transcriber:        transcriber,
		transcriptionModel: transcriptionModel,
		embedder:           embedder,
		roomRepository:     roomRepository,
		chunkRepository:    chunkRepository,
		logger:             logger,
	}
}

// Ingest transcribes an audio recording, embeds the transcription and stores
// it as a chunk of the room, making it retrievable by the question pipeline.
func (i *ingestor) Ingest(ctx context.Context, roomID uuid.UUID, mimeType string, data []byte) (*IngestResult, error) {
	if _, err := i.roomRepository.Get(ctx, roomID); err != nil {
		return nil, err
	}

	transcription, err := i.transcriber.Transcribe(
		ctx,
		&providers.Config{Model: i.transcriptionModel},
		mimeType,
		data,
	)
	if err != nil {
		return nil, domain.NewUpstreamError("transcription", err)
	}

	chunkEmbedding, err := i.embedder.Generate(ctx, transcription)
	if err != nil {
		return nil, domain.NewUpstreamError("embedding", err)
	}

	chunk := &audiochunk.AudioChunk{
		RoomID:        roomID,
		Transcription: transcription,
		Embedding:     pgvector.NewVector(chunkEmbedding.Value),
	}
	if err := i.chunkRepository.Create(ctx, chunk); err != nil {
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"room_id":  roomID,
		"chunk_id": chunk.ID,
	}).Debug("stored audio chunk")

	return &IngestResult{
		ChunkID:       chunk.ID,
		Transcription: transcription,
	}, nil
}
