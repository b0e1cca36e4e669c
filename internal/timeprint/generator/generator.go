package generator

import (
	"context"
	"strings"
	"time"

	llmHandlers "github.com/shahparacha/timeprint-gpt/internal/llm_handlers"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/prompts"

	"go.uber.org/zap"
)

// FallbackReply is persisted as the assistant message when the completion
// backend fails. The turn still completes.
const FallbackReply = "I encountered an error while generating a response. Please try again."

// EmptyReply covers the rare case of a successful call with no text.
const EmptyReply = "Sorry, I couldn't generate a response."

const generateTimeout = 60 * time.Second

// Generator produces the assistant reply from conversation history plus
// retrieved context.
type Generator struct {
	client llmHandlers.Client
	logger *zap.Logger
}

func New(client llmHandlers.Client, logger *zap.Logger) *Generator {
	return &Generator{client: client, logger: logger}
}

// Generate assembles the prompt and calls the completion backend. It never
// returns an error: failures degrade to FallbackReply so the turn can be
// persisted regardless.
func (g *Generator) Generate(ctx context.Context, history []models.Message, docs []models.DocumentSearchResult) string {
	system := prompts.SystemPrompt(docs)

	messages := make([]llmHandlers.Message, len(history))
	for i, msg := range history {
		messages[i] = llmHandlers.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := g.client.Chat(ctx, system, messages)
	if err != nil {
		g.logger.Error("generation failed, returning fallback reply", zap.Error(err))
		return FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply
	}
	return reply
}
