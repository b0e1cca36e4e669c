package generator

import (
	"context"
	"errors"
	"testing"

	llmHandlers "github.com/shahparacha/timeprint-gpt/internal/llm_handlers"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClient struct {
	reply      string
	err        error
	gotSystem  string
	gotHistory []llmHandlers.Message
}

func (f *fakeClient) Chat(ctx context.Context, systemMessage string, messages []llmHandlers.Message) (string, error) {
	f.gotSystem = systemMessage
	f.gotHistory = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateIncludesDocumentContext(t *testing.T) {
	client := &fakeClient{reply: "The foundation depth is 3m."}
	gen := New(client, zap.NewNop())

	history := []models.Message{
		models.NewMessage(models.RoleUser, "What is the foundation depth?"),
	}
	docs := []models.DocumentSearchResult{
		{Title: "Spec A", Content: "Depth: 3m", URL: "/a.pdf", Certainty: 0.9},
	}

	reply := gen.Generate(context.Background(), history, docs)

	assert.Equal(t, "The foundation depth is 3m.", reply)
	assert.Contains(t, client.gotSystem, "Title: Spec A")
	assert.Contains(t, client.gotSystem, "Content: Depth: 3m")
	assert.Contains(t, client.gotSystem, "URL: /a.pdf")
	require.Len(t, client.gotHistory, 1)
	assert.Equal(t, models.RoleUser, client.gotHistory[0].Role)
}

func TestGenerateNoDocumentsMarker(t *testing.T) {
	client := &fakeClient{reply: "I could not find anything in your documents."}
	gen := New(client, zap.NewNop())

	gen.Generate(context.Background(), []models.Message{
		models.NewMessage(models.RoleUser, "hello"),
	}, nil)

	assert.Contains(t, client.gotSystem, prompts.NoDocumentsMarker)
	assert.NotContains(t, client.gotSystem, "Relevant documents:")
}

func TestGenerateFallbackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("upstream timeout")}
	gen := New(client, zap.NewNop())

	reply := gen.Generate(context.Background(), []models.Message{
		models.NewMessage(models.RoleUser, "hello"),
	}, nil)

	assert.Equal(t, FallbackReply, reply)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	client := &fakeClient{reply: "   "}
	gen := New(client, zap.NewNop())

	reply := gen.Generate(context.Background(), []models.Message{
		models.NewMessage(models.RoleUser, "hello"),
	}, nil)

	assert.Equal(t, EmptyReply, reply)
}

func TestContextBlockDeterministic(t *testing.T) {
	docs := []models.DocumentSearchResult{
		{Title: "A", Content: "a", URL: "/a"},
		{Title: "B", Content: "b", URL: "/b"},
	}
	first := prompts.ContextBlock(docs)
	second := prompts.ContextBlock(docs)
	assert.Equal(t, first, second)
	assert.Equal(t, "Relevant documents:\nTitle: A\nContent: a\nURL: /a\n---\nTitle: B\nContent: b\nURL: /b\n---", first)
}
