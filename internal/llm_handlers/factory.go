package llmHandlers

import (
	"context"
	"fmt"

	"github.com/shahparacha/timeprint-gpt/internal/config"
)

// Generation parameters are fixed configuration, not user-controllable.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
)

// NewClient builds the completion client for the configured provider.
func NewClient(ctx context.Context, cfg config.AIConfig) (Client, error) {
	switch cfg.Provider {
	case "openai", "groq", "langchain":
		return NewLangChainClient(LangChainConfig{
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			APIKey:      cfg.APIKey,
			Temperature: DefaultTemperature,
			MaxTokens:   DefaultMaxTokens,
		})
	case "gemini":
		return NewGenaiGeminiClient(ctx, cfg.APIKey, cfg.Model, DefaultTemperature, DefaultMaxTokens)
	case "vertex_anthropic":
		return NewVertexAnthropicClient(ctx, VertexAnthropicConfig{
			ProjectID:      cfg.GCPProjectID,
			Location:       cfg.GCPRegion,
			ModelID:        cfg.Model,
			CredentialsB64: cfg.GCPCredentials,
			Temperature:    DefaultTemperature,
			MaxTokens:      DefaultMaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// NewEmbeddingClient builds the embedder for the configured provider.
func NewEmbeddingClient(ctx context.Context, cfg config.AIConfig) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "openai":
		return NewLangChainEmbedder(cfg.EmbeddingModel, cfg.BaseURL, cfg.APIKey)
	case "vertex":
		return NewVertexEmbedder(ctx, cfg.GCPProjectID, cfg.GCPRegion, cfg.EmbeddingModel, cfg.GCPCredentials)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
}
