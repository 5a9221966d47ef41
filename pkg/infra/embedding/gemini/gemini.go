package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/askroom/askroom/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	vectorDimension       = 768
	defaultRequestTimeout = 30 * time.Second
)

type embeddingService struct {
	genaiClient *genai.Client
	model       string
	logger      *logrus.Logger
}

func NewGeminiEmbeddingService(genaiClient *genai.Client, model string, logger *logrus.Logger) embedding.Creator {
	return &embeddingService{
		genaiClient: genaiClient,
		model:       model,
		logger:      logger,
	}
}

func (s *embeddingService) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	result, err := s.genaiClient.Models.EmbedContent(
		ctx,
		s.model,
		genai.Text(text),
		nil,
	)
	if err != nil {
		s.logger.WithError(err).Error("failed to generate embedding")
		return nil, fmt.Errorf("%w: %v", embedding.ErrProviderNonOKResponse, err)
	}

	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		s.logger.Error("empty embeddings received from API")
		return nil, fmt.Errorf("empty embeddings from API")
	}

	rawEmbedding := result.Embeddings[0].Values

	if len(rawEmbedding) != vectorDimension {
		return nil, fmt.Errorf("embedding size %d does not match expected dimension %d", len(rawEmbedding), vectorDimension)
	}

	return &embedding.Embedding{
		Value:     rawEmbedding,
		CreatedAt: time.Now(),
	}, nil
}
