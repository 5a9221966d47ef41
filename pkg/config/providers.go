package config

type ProvidersConfig struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey             string `mapstructure:"api_key"`
	EmbeddingModel     string `mapstructure:"embedding_model"`
	GenerationModel    string `mapstructure:"generation_model"`
	TranscriptionModel string `mapstructure:"transcription_model"`
}
