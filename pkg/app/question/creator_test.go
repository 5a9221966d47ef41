package question

import (
	"context"
	"errors"
	"testing"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/audiochunk"
	chunkMocks "github.com/askroom/askroom/pkg/domain/audiochunk/mocks"
	"github.com/askroom/askroom/pkg/domain/embedding"
	embeddingMocks "github.com/askroom/askroom/pkg/domain/embedding/mocks"
	domainQuestion "github.com/askroom/askroom/pkg/domain/question"
	questionMocks "github.com/askroom/askroom/pkg/domain/question/mocks"
	"github.com/askroom/askroom/pkg/infra/providers"
	providerMocks "github.com/askroom/askroom/pkg/infra/providers/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const generationModel = "gemini-2.5-flash"

func newTestCreator() (Creator, *embeddingMocks.Creator, *providerMocks.Client, *chunkMocks.Repository, *questionMocks.Repository) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	embedder := new(embeddingMocks.Creator)
	answerer := new(providerMocks.Client)
	chunkRepo := new(chunkMocks.Repository)
	questionRepo := new(questionMocks.Repository)

	creator := NewCreator(embedder, answerer, generationModel, chunkRepo, questionRepo, logger)
	return creator, embedder, answerer, chunkRepo, questionRepo
}

func queryEmbedding() *embedding.Embedding {
	value := make([]float32, 768)
	for i := range value {
		value[i] = 0.1
	}
	return &embedding.Embedding{Value: value}
}

func TestCreateQuestion_AnswerGroundedInMatchingChunks(t *testing.T) {
	creator, embedder, answerer, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	questionID := uuid.New()
	questionText := "why was the delay?"

	chunks := []audiochunk.SimilarChunk{
		{ID: uuid.New(), Transcription: "rain caused delays", Similarity: 0.92},
		{ID: uuid.New(), Transcription: "traffic report", Similarity: 0.81},
	}

	embedder.On("Generate", mock.Anything, questionText).Return(queryEmbedding(), nil)
	chunkRepo.On("SearchSimilar", mock.Anything, roomID, mock.Anything, 0.7, 5).Return(chunks, nil)
	answerer.On("Answer", mock.Anything, mock.Anything, questionText, []string{"rain caused delays", "traffic report"}).
		Return(&providers.CompletionResponse{Response: "heavy rain delayed the event"}, nil).
		Once()
	questionRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			entity, ok := args.Get(1).(*domainQuestion.Question)
			require.True(t, ok)
			entity.ID = questionID
		}).
		Return(nil)

	result, err := creator.Create(context.Background(), roomID, questionText)
	require.NoError(t, err)

	assert.Equal(t, questionID, result.QuestionID)
	require.NotNil(t, result.Answer)
	assert.Equal(t, "heavy rain delayed the event", *result.Answer)

	answerer.AssertNumberOfCalls(t, "Answer", 1)
	questionRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(q *domainQuestion.Question) bool {
		return q.RoomID == roomID && q.Question == questionText && q.Answer != nil
	}))
}

func TestCreateQuestion_NoChunksAboveThreshold(t *testing.T) {
	creator, embedder, answerer, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	questionText := "what was discussed?"

	embedder.On("Generate", mock.Anything, questionText).Return(queryEmbedding(), nil)
	chunkRepo.On("SearchSimilar", mock.Anything, roomID, mock.Anything, 0.7, 5).
		Return([]audiochunk.SimilarChunk{}, nil)
	questionRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			entity, ok := args.Get(1).(*domainQuestion.Question)
			require.True(t, ok)
			entity.ID = uuid.New()
		}).
		Return(nil)

	result, err := creator.Create(context.Background(), roomID, questionText)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.QuestionID)
	assert.Nil(t, result.Answer)
	answerer.AssertNotCalled(t, "Answer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	questionRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(q *domainQuestion.Question) bool {
		return q.Answer == nil
	}))
}

func TestCreateQuestion_EmbeddingFailureAbortsWithoutPersisting(t *testing.T) {
	creator, embedder, answerer, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	embedder.On("Generate", mock.Anything, mock.Anything).
		Return(nil, errors.New("embedding service unavailable"))

	result, err := creator.Create(context.Background(), roomID, "why was the delay?")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsUpstreamError(err))

	chunkRepo.AssertNotCalled(t, "SearchSimilar", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	answerer.AssertNotCalled(t, "Answer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	questionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQuestion_GenerationFailureAbortsWithoutPersisting(t *testing.T) {
	creator, embedder, answerer, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	chunks := []audiochunk.SimilarChunk{
		{ID: uuid.New(), Transcription: "rain caused delays", Similarity: 0.92},
	}

	embedder.On("Generate", mock.Anything, mock.Anything).Return(queryEmbedding(), nil)
	chunkRepo.On("SearchSimilar", mock.Anything, roomID, mock.Anything, 0.7, 5).Return(chunks, nil)
	answerer.On("Answer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("generation service unavailable"))

	result, err := creator.Create(context.Background(), roomID, "why was the delay?")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsUpstreamError(err))

	questionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateQuestion_PersistenceFailureSurfaced(t *testing.T) {
	creator, embedder, _, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	embedder.On("Generate", mock.Anything, mock.Anything).Return(queryEmbedding(), nil)
	chunkRepo.On("SearchSimilar", mock.Anything, roomID, mock.Anything, 0.7, 5).
		Return(nil, nil)
	questionRepo.On("Create", mock.Anything, mock.Anything).
		Return(domain.NewPersistenceError("question", errors.New("no row created")))

	result, err := creator.Create(context.Background(), roomID, "why was the delay?")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsPersistenceError(err))
}

func TestCreateQuestion_GenerationModelPassedThrough(t *testing.T) {
	creator, embedder, answerer, chunkRepo, questionRepo := newTestCreator()

	roomID := uuid.New()
	chunks := []audiochunk.SimilarChunk{
		{ID: uuid.New(), Transcription: "rain caused delays", Similarity: 0.92},
	}

	embedder.On("Generate", mock.Anything, mock.Anything).Return(queryEmbedding(), nil)
	chunkRepo.On("SearchSimilar", mock.Anything, roomID, mock.Anything, 0.7, 5).Return(chunks, nil)
	answerer.On("Answer", mock.Anything, mock.MatchedBy(func(cfg *providers.Config) bool {
		return cfg.Model == generationModel
	}), mock.Anything, mock.Anything).
		Return(&providers.CompletionResponse{Response: "an answer"}, nil)
	questionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := creator.Create(context.Background(), roomID, "why was the delay?")
	require.NoError(t, err)
	answerer.AssertExpectations(t)
}
