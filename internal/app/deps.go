package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"textlens/internal/config"
	"textlens/internal/logger"
	"textlens/internal/pipeline"
	"textlens/internal/process"
)

// Deps bundles the runtime dependencies of the service. Model clients are
// constructed once here and injected; nothing holds ambient global state.
type Deps struct {
	Config       config.Config
	Log          *slog.Logger
	Summarizer   pipeline.Summarizer
	Answerer     pipeline.Answerer
	Orchestrator *process.Orchestrator
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Deps{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, "textlens")

	summarizer, answerer, err := buildPipelines(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize model pipelines: %w", err)
	}

	fetcher := &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second}
	orch := process.New(summarizer, answerer, fetcher, cfg.KeywordCount, log)

	return Deps{
		Config:       cfg,
		Log:          log,
		Summarizer:   summarizer,
		Answerer:     answerer,
		Orchestrator: orch,
	}, nil
}

func buildPipelines(cfg config.Config, log *slog.Logger) (pipeline.Summarizer, pipeline.Answerer, error) {
	switch cfg.ModelProvider {
	case "huggingface":
		client := pipeline.NewHFClient(cfg.HFBaseURL, cfg.HFToken)
		log.Info("using Hugging Face inference pipelines", "base_url", cfg.HFBaseURL)
		return client, client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, nil, fmt.Errorf("OPENAI_API_KEY is required when MODEL_PROVIDER=openai")
		}
		client, err := pipeline.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.OpenAIModel))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI model pipelines", "model", cfg.OpenAIModel)
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("invalid MODEL_PROVIDER: %s (valid options: huggingface, openai)", cfg.ModelProvider)
	}
}
