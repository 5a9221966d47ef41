package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/askroom/askroom/pkg/domain"
	chunkMocks "github.com/askroom/askroom/pkg/domain/audiochunk/mocks"
	"github.com/askroom/askroom/pkg/domain/embedding"
	embeddingMocks "github.com/askroom/askroom/pkg/domain/embedding/mocks"
	"github.com/askroom/askroom/pkg/domain/room"
	roomMocks "github.com/askroom/askroom/pkg/domain/room/mocks"
	providerMocks "github.com/askroom/askroom/pkg/infra/providers/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestIngestor() (Ingestor, *providerMocks.Transcriber, *embeddingMocks.Creator, *roomMocks.Repository, *chunkMocks.Repository) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	transcriber := new(providerMocks.Transcriber)
	embedder := new(embeddingMocks.Creator)
	roomRepo := new(roomMocks.Repository)
	chunkRepo := new(chunkMocks.Repository)

	ingestor := NewIngestor(transcriber, "gemini-2.5-flash", embedder, roomRepo, chunkRepo, logger)
	return ingestor, transcriber, embedder, roomRepo, chunkRepo
}

func chunkEmbedding() *embedding.Embedding {
	value := make([]float32, 768)
	for i := range value {
		value[i] = 0.2
	}
	return &embedding.Embedding{Value: value}
}

func TestIngest_StoresTranscribedChunk(t *testing.T) {
	ingestor, transcriber, embedder, roomRepo, chunkRepo := newTestIngestor()

	roomID := uuid.New()
	audioData := []byte("fake-webm-bytes")

	roomRepo.On("Get", mock.Anything, roomID).Return(&room.Room{ID: roomID, Name: "standup"}, nil)
	transcriber.On("Transcribe", mock.Anything, mock.Anything, "audio/webm", audioData).
		Return("rain caused delays on the highway", nil)
	embedder.On("Generate", mock.Anything, "rain caused delays on the highway").
		Return(chunkEmbedding(), nil)
	chunkRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := ingestor.Ingest(context.Background(), roomID, "audio/webm", audioData)
	require.NoError(t, err)
	assert.Equal(t, "rain caused delays on the highway", result.Transcription)

	chunkRepo.AssertExpectations(t)
}

func TestIngest_UnknownRoom(t *testing.T) {
	ingestor, transcriber, _, roomRepo, chunkRepo := newTestIngestor()

	roomID := uuid.New()
	roomRepo.On("Get", mock.Anything, roomID).Return(nil, domain.NewNotFoundError("room", roomID))

	result, err := ingestor.Ingest(context.Background(), roomID, "audio/webm", []byte("data"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsNotFoundError(err))

	transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	chunkRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngest_TranscriptionFailure(t *testing.T) {
	ingestor, transcriber, embedder, roomRepo, chunkRepo := newTestIngestor()

	roomID := uuid.New()
	roomRepo.On("Get", mock.Anything, roomID).Return(&room.Room{ID: roomID, Name: "standup"}, nil)
	transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("transcription service unavailable"))

	result, err := ingestor.Ingest(context.Background(), roomID, "audio/webm", []byte("data"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsUpstreamError(err))

	embedder.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	chunkRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
