package llmHandlers

import (
	"context"

	"github.com/shahparacha/timeprint-gpt/internal/models"
)

// Message is one role/content pair sent to a completion backend.
type Message struct {
	Role    models.Role
	Content string
}

// Client is the provider-agnostic completion interface. Implementations
// wrap a hosted text-generation service.
type Client interface {
	Chat(ctx context.Context, systemMessage string, messages []Message) (string, error)
}

// Embedder turns text into vectors for similarity search.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
