package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// URL fetching
	FetchTimeoutSeconds int `env:"FETCH_TIMEOUT_SECONDS" envDefault:"15"`

	// Model inference
	ModelProvider string `env:"MODEL_PROVIDER" envDefault:"huggingface"` // "huggingface" (Inference API) or "openai"
	HFToken       string `env:"HF_API_TOKEN"`
	HFBaseURL     string `env:"HF_BASE_URL" envDefault:"https://api-inference.huggingface.co"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Output tuning
	KeywordCount int `env:"KEYWORD_COUNT" envDefault:"5"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
