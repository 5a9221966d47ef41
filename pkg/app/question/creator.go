package question

import (
	"context"
	"time"

	"github.com/askroom/askroom/pkg/domain"
	"github.com/askroom/askroom/pkg/domain/audiochunk"
	"github.com/askroom/askroom/pkg/domain/embedding"
	domainQuestion "github.com/askroom/askroom/pkg/domain/question"
	"github.com/askroom/askroom/pkg/infra/metrics"
	"github.com/askroom/askroom/pkg/infra/providers"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Chunks at or below this similarity are not relevant enough to ground
	// an answer. The comparison is strict.
	similarityThreshold = 0.7
	maxContextChunks    = 5
)

type Creator interface {
	Create(ctx context.Context, roomID uuid.UUID, questionText string) (*CreateResult, error)
}

type CreateResult struct {
	QuestionID uuid.UUID
	Answer     *string
}

type creator struct {
	embedder        embedding.Creator
	answerer        providers.Client
	generationModel string
	chunkRepository audiochunk.Repository
	repository      domainQuestion.Repository
	logger          *logrus.Logger
}

func NewCreator(
	embedder embedding.Creator,
	answerer providers.Client,
	generationModel string,
	chunkRepository audiochunk.Repository,
	repository domainQuestion.Repository,
	logger *logrus.Logger,
) Creator {
	return &creator{
		embedder:        embedder,
		answerer:        answerer,
		generationModel: generationModel,
		chunkRepository: chunkRepository,
		repository:      repository,
		logger:          logger,
	}
}

// Create runs the question pipeline: embed the question, retrieve the room's
// most similar transcript chunks, generate an answer when at least one chunk
// matched, and persist the question. The insert is the only mutation and the
// last step, so a failure at any stage leaves no partial state. Input is
// assumed validated by the transport layer.
func (c *creator) Create(ctx context.Context, roomID uuid.UUID, questionText string) (*CreateResult, error) {
	start := time.Now()
	queryEmbedding, err := c.embedder.Generate(ctx, questionText)
	if err != nil {
		return nil, domain.NewUpstreamError("embedding", err)
	}
	metrics.PipelineStageLatency.WithLabelValues("embedding").Observe(msSince(start))

	start = time.Now()
	chunks, err := c.chunkRepository.SearchSimilar(
		ctx, roomID, queryEmbedding.Value, similarityThreshold, maxContextChunks,
	)
	if err != nil {
		return nil, err
	}
	metrics.PipelineStageLatency.WithLabelValues("retrieval").Observe(msSince(start))

	c.logger.WithFields(logrus.Fields{
		"room_id": roomID,
		"chunks":  len(chunks),
	}).Debug("retrieved similar chunks")

	var answer *string
	if len(chunks) > 0 {
		transcriptions := make([]string, len(chunks))
		for i, chunk := range chunks {
			transcriptions[i] = chunk.Transcription
		}

		start = time.Now()
		completion, err := c.answerer.Answer(
			ctx,
			&providers.Config{Model: c.generationModel},
			questionText,
			transcriptions,
		)
		if err != nil {
			return nil, domain.NewUpstreamError("generation", err)
		}
		metrics.PipelineStageLatency.WithLabelValues("generation").Observe(msSince(start))
		answer = &completion.Response
	}

	entity := &domainQuestion.Question{
		RoomID:   roomID,
		Question: questionText,
		Answer:   answer,
	}

	start = time.Now()
	if err := c.repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	metrics.PipelineStageLatency.WithLabelValues("persistence").Observe(msSince(start))
	metrics.QuestionsCreatedTotal.WithLabelValues(answeredLabel(answer)).Inc()

	return &CreateResult{
		QuestionID: entity.ID,
		Answer:     answer,
	}, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Milliseconds())
}

func answeredLabel(answer *string) string {
	if answer != nil {
		return "true"
	}
	return "false"
}
