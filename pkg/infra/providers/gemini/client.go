package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/askroom/askroom/pkg/infra/providers"
	"google.golang.org/genai"
)

const (
	defaultModel          = "gemini-2.5-flash"
	defaultRequestTimeout = 60 * time.Second
)

const answerSystemPrompt = `You answer questions about a recorded session using only the transcript ` +
	`excerpts provided as context. The excerpts are ordered from most to least relevant. ` +
	`If the context does not contain the answer, say that the recording does not cover it. ` +
	`Be concise and do not mention the excerpts themselves.`

const transcriptionPrompt = `Transcribe the audio faithfully. ` +
	`Use correct punctuation and split the text into natural paragraphs.`

type Client struct {
	genaiClient *genai.Client
}

func NewGeminiClient(apiKey string) (*genai.Client, error) {
	genaiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return genaiClient, nil
}

func NewClient(genaiClient *genai.Client) *Client {
	return &Client{
		genaiClient: genaiClient,
	}
}

func (c *Client) Answer(
	ctx context.Context,
	config *providers.Config,
	question string,
	contextPassages []string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		config.Model = defaultModel
	}

	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = answerSystemPrompt
	}

	var prompt strings.Builder
	prompt.WriteString("Context:\n")
	for _, passage := range contextPassages {
		prompt.WriteString(passage)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString("Question: ")
	prompt.WriteString(question)

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		config.Model,
		genai.Text(prompt.String()),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemPrompt}},
				Role:  "system",
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := strings.TrimSpace(result.Text())
	if responseText == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	completionResp := &providers.CompletionResponse{
		ID:       fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:    config.Model,
		Response: responseText,
	}

	if result.UsageMetadata != nil {
		completionResp.Usage = providers.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return completionResp, nil
}

func (c *Client) Transcribe(
	ctx context.Context,
	config *providers.Config,
	mimeType string,
	audio []byte,
) (string, error) {
	if config.Model == "" {
		config.Model = defaultModel
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: transcriptionPrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
			},
			Role: "user",
		},
	}

	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	result, err := c.genaiClient.Models.GenerateContent(ctx, config.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	transcription := strings.TrimSpace(result.Text())
	if transcription == "" {
		return "", fmt.Errorf("empty transcription returned")
	}

	return transcription, nil
}
