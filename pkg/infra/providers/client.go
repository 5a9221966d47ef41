package providers

import (
	"context"
)

type Config struct {
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client generates an answer for a question grounded in the given context
// passages, ordered most relevant first.
type Client interface {
	Answer(ctx context.Context, config *Config, question string, contextPassages []string) (*CompletionResponse, error)
}

//go:generate mockery --name=Transcriber --dir=. --output=./mocks --filename=transcriber_mock.go --case=underscore --with-expecter

// Transcriber converts raw audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, config *Config, mimeType string, audio []byte) (string, error)
}
