package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTPAddr string
	// Empty disables insight history.
	PostgresDSN string

	MaxUploadBytes int64
	MaxDatasets    int
	PreviewRows    int

	Pipeline PipelineConfig
}

// PipelineConfig selects and configures the insight pipeline.
// Provider is one of "langflow", "openai", "ollama", "anthropic".
type PipelineConfig struct {
	Provider string
	Timeout  time.Duration

	// Langflow server
	LangflowURL    string
	LangflowAPIKey string
	InsightsFlowID string
	ChatFlowID     string
	Components     LangflowComponents

	// Model
	Model       string
	ModelURL    string
	ModelAPIKey string
	Temperature float64
	MaxTokens   int

	// Retrieval (chat flow vector store)
	CollectionName   string
	PersistDirectory string
	NumberOfResults  int
	SearchType       string

	HistoryLimit    int
	ContextMaxBytes int
}

// LangflowComponents holds the node IDs the flow files use for each tweakable component.
type LangflowComponents struct {
	InsightsChatInput string
	InsightsPrompt    string
	InsightsFile      string
	InsightsModel     string

	ChatInput  string
	ChatPrompt string
	ChatModel  string
	ChatStore  string
}

func Load() (Config, error) {
	provider := strings.ToLower(GetEnv("PIPELINE_PROVIDER", "langflow"))
	model, modelURL := modelDefaults(provider)

	cfg := Config{
		HTTPAddr:       GetEnv("HTTP_ADDR", ":8080"),
		PostgresDSN:    GetEnv("POSTGRES_DSN", ""),
		MaxUploadBytes: GetEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		MaxDatasets:    GetEnvInt("MAX_DATASETS", 64),
		PreviewRows:    GetEnvInt("PREVIEW_ROWS", 5),
		Pipeline: PipelineConfig{
			Provider:       provider,
			Timeout:        GetEnvDuration("PIPELINE_TIMEOUT", 2*time.Minute),
			LangflowURL:    GetEnv("LANGFLOW_URL", "http://localhost:7860"),
			LangflowAPIKey: GetEnv("LANGFLOW_API_KEY", ""),
			InsightsFlowID: GetEnv("LANGFLOW_INSIGHTS_FLOW_ID", "social-insights"),
			ChatFlowID:     GetEnv("LANGFLOW_CHAT_FLOW_ID", "social-chat"),
			Components: LangflowComponents{
				InsightsChatInput: GetEnv("LANGFLOW_INSIGHTS_INPUT_ID", "ChatInput-XWipW"),
				InsightsPrompt:    GetEnv("LANGFLOW_INSIGHTS_PROMPT_ID", "Prompt-5VzY2"),
				InsightsFile:      GetEnv("LANGFLOW_INSIGHTS_FILE_ID", "File-XCz1E"),
				InsightsModel:     GetEnv("LANGFLOW_INSIGHTS_MODEL_ID", "OllamaModel-Ksd7O"),
				ChatInput:         GetEnv("LANGFLOW_CHAT_INPUT_ID", "ChatInput-JQ9je"),
				ChatPrompt:        GetEnv("LANGFLOW_CHAT_PROMPT_ID", "Prompt-kNXeh"),
				ChatModel:         GetEnv("LANGFLOW_CHAT_MODEL_ID", "OllamaModel-82WGy"),
				ChatStore:         GetEnv("LANGFLOW_CHAT_STORE_ID", "Chroma-Hf7kl"),
			},
			Model:            GetEnv("LLM_MODEL", model),
			ModelURL:         GetEnv("LLM_API_URL", modelURL),
			ModelAPIKey:      GetEnv("LLM_API_KEY", ""),
			Temperature:      GetEnvFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:        GetEnvInt("LLM_MAX_TOKENS", 1024),
			CollectionName:   GetEnv("RETRIEVAL_COLLECTION", "social2"),
			PersistDirectory: GetEnv("RETRIEVAL_PERSIST_DIR", "./chroma"),
			NumberOfResults:  GetEnvInt("RETRIEVAL_RESULTS", 10),
			SearchType:       GetEnv("RETRIEVAL_SEARCH_TYPE", "Similarity"),
			HistoryLimit:     GetEnvInt("CHAT_HISTORY_LIMIT", 6),
			ContextMaxBytes:  GetEnvInt("PIPELINE_CONTEXT_MAX_BYTES", 64<<10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: MAX_UPLOAD_BYTES must be positive", ErrInvalidConfig)
	}
	if c.MaxDatasets <= 0 {
		return fmt.Errorf("%w: MAX_DATASETS must be positive", ErrInvalidConfig)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("%w: PREVIEW_ROWS cannot be negative", ErrInvalidConfig)
	}

	switch c.Pipeline.Provider {
	case "langflow":
		if c.Pipeline.LangflowURL == "" {
			return fmt.Errorf("%w: LANGFLOW_URL is required for the langflow provider", ErrInvalidConfig)
		}
	case "openai", "anthropic":
		if c.Pipeline.ModelAPIKey == "" {
			return fmt.Errorf("%w: LLM_API_KEY is required for the %s provider", ErrInvalidConfig, c.Pipeline.Provider)
		}
	case "ollama":
	default:
		return fmt.Errorf("%w: unknown PIPELINE_PROVIDER %q", ErrInvalidConfig, c.Pipeline.Provider)
	}

	if c.Pipeline.Timeout <= 0 {
		return fmt.Errorf("%w: PIPELINE_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}

// modelDefaults returns the default model and base URL per provider. Hosted
// APIs use their SDK's base URL.
func modelDefaults(provider string) (string, string) {
	switch provider {
	case "openai":
		return "gpt-4o-mini", ""
	case "anthropic":
		return "claude-haiku-4-5", ""
	default:
		return "llama3:latest", "http://localhost:11434"
	}
}
