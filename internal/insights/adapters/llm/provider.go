package llm

import (
	"fmt"
	"strings"
)

const (
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-haiku-4-5"
	defaultOllamaURL      = "http://localhost:11434"
)

type Config struct {
	Provider        string
	Model           string
	APIKey          string
	APIURL          string
	MaxTokens       int
	MaxContextBytes int
}

// NewPipeline picks the completer for cfg.Provider.
func NewPipeline(cfg Config) (*Pipeline, error) {
	var c Completer
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		c = NewOpenAICompleter(cfg.APIKey, cfg.APIURL, modelOr(cfg.Model, defaultOpenAIModel), cfg.MaxTokens)
	case "anthropic":
		c = NewAnthropicCompleter(cfg.APIKey, cfg.APIURL, modelOr(cfg.Model, defaultAnthropicModel), cfg.MaxTokens)
	case "ollama":
		c = NewOpenAICompleter(ollamaKey(cfg.APIKey), ollamaBaseURL(cfg.APIURL), cfg.Model, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	return New(strings.ToLower(cfg.Provider), c, cfg.MaxContextBytes), nil
}

func modelOr(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}

// ollamaBaseURL points at Ollama's OpenAI compatible endpoint.
func ollamaBaseURL(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	if u == "" {
		u = defaultOllamaURL
	}
	if !strings.HasSuffix(u, "/v1") {
		u += "/v1"
	}
	return u + "/"
}

// Ollama ignores the key but the client always sends one.
func ollamaKey(key string) string {
	if key == "" {
		return "ollama"
	}
	return key
}
