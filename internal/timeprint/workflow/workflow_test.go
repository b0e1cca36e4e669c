package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	llmHandlers "github.com/shahparacha/timeprint-gpt/internal/llm_handlers"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/generator"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/prompts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memorySessionStore implements the session store contract in memory.
type memorySessionStore struct {
	sessions map[uuid.UUID]*models.ChatSession
	getErr   error
	updErr   error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[uuid.UUID]*models.ChatSession)}
}

func (m *memorySessionStore) Create(ctx context.Context, userID string) (*models.ChatSession, error) {
	now := time.Now()
	session := &models.ChatSession{
		UUID:      uuid.New(),
		Title:     models.DefaultSessionTitle,
		UserID:    userID,
		OrgID:     "default",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := session.SetMessages(nil); err != nil {
		return nil, err
	}
	copied := *session
	m.sessions[session.UUID] = &copied
	return session, nil
}

func (m *memorySessionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ChatSession, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) ListByUser(ctx context.Context, userID string) ([]models.ChatSession, error) {
	var out []models.ChatSession
	for _, session := range m.sessions {
		if session.UserID == userID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (m *memorySessionStore) Update(ctx context.Context, id uuid.UUID, patch repo.SessionPatch) error {
	if m.updErr != nil {
		return m.updErr
	}
	session, ok := m.sessions[id]
	if !ok {
		return errors.New("update on missing session")
	}
	if patch.Title != nil {
		session.Title = *patch.Title
	}
	if patch.Messages != nil {
		if err := session.SetMessages(patch.Messages); err != nil {
			return err
		}
	}
	session.UpdatedAt = time.Now()
	return nil
}

func (m *memorySessionStore) DeleteEmpty(ctx context.Context, userID string) (int, error) {
	deleted := 0
	for id, session := range m.sessions {
		if session.UserID != userID {
			continue
		}
		messages, err := session.DecodeMessages()
		if err != nil {
			continue
		}
		if len(messages) == 0 {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

type stubSearcher struct {
	calls   int
	results []models.DocumentSearchResult
}

func (s *stubSearcher) Search(ctx context.Context, query, userID string, limit int) []models.DocumentSearchResult {
	s.calls++
	if s.results == nil {
		return []models.DocumentSearchResult{}
	}
	return s.results
}

type stubClient struct {
	reply     string
	err       error
	gotSystem string
}

func (c *stubClient) Chat(ctx context.Context, systemMessage string, messages []llmHandlers.Message) (string, error) {
	c.gotSystem = systemMessage
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func newWorkflow(store *memorySessionStore, searcher *stubSearcher, client *stubClient) *Workflow {
	gen := generator.New(client, zap.NewNop())
	return New(store, searcher, gen, zap.NewNop())
}

func storedMessages(t *testing.T, store *memorySessionStore, id uuid.UUID) []models.Message {
	t.Helper()
	session, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session)
	messages, err := session.DecodeMessages()
	require.NoError(t, err)
	return messages
}

func TestSubmitTurnHappyPath(t *testing.T) {
	store := newMemorySessionStore()
	searcher := &stubSearcher{results: []models.DocumentSearchResult{
		{Title: "Spec A", Content: "Depth: 3m", URL: "/a.pdf", Certainty: 0.9},
	}}
	client := &stubClient{reply: "The foundation depth is 3m."}
	w := newWorkflow(store, searcher, client)

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSessionTitle, session.Title)

	result, err := w.SubmitTurn(context.Background(), "u1", session.UUID, "What is the foundation depth?")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, result.UserMessage.Role)
	assert.Equal(t, "What is the foundation depth?", result.UserMessage.Content)
	assert.Equal(t, models.RoleAssistant, result.AssistantMessage.Role)
	assert.Equal(t, "The foundation depth is 3m.", result.AssistantMessage.Content)

	// the title comes from the first user message and fits in 50 chars
	assert.Equal(t, "What is the foundation depth?", result.Session.Title)

	persisted := storedMessages(t, store, session.UUID)
	require.Len(t, persisted, 2)
	assert.Equal(t, models.RoleUser, persisted[0].Role)
	assert.Equal(t, models.RoleAssistant, persisted[1].Role)
	assert.Equal(t, 1, searcher.calls)
}

func TestSubmitTurnAppendsTwoMessagesPerTurn(t *testing.T) {
	store := newMemorySessionStore()
	client := &stubClient{reply: "ok"}
	w := newWorkflow(store, &stubSearcher{}, client)

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	for turn := 1; turn <= 3; turn++ {
		_, err := w.SubmitTurn(context.Background(), "u1", session.UUID, "question")
		require.NoError(t, err)
		persisted := storedMessages(t, store, session.UUID)
		assert.Len(t, persisted, turn*2)
		assert.Equal(t, models.RoleUser, persisted[len(persisted)-2].Role)
		assert.Equal(t, models.RoleAssistant, persisted[len(persisted)-1].Role)
	}
}

func TestSubmitTurnTitleTruncatedAndIdempotent(t *testing.T) {
	store := newMemorySessionStore()
	w := newWorkflow(store, &stubSearcher{}, &stubClient{reply: "ok"})

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	long := strings.Repeat("a", 80)
	result, err := w.SubmitTurn(context.Background(), "u1", session.UUID, long)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50), result.Session.Title)

	// further turns do not retitle
	result, err = w.SubmitTurn(context.Background(), "u1", session.UUID, "a different question")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50), result.Session.Title)
}

func TestSubmitTurnRetrievalEmptyUsesMarker(t *testing.T) {
	store := newMemorySessionStore()
	client := &stubClient{reply: "I don't have documents for that."}
	w := newWorkflow(store, &stubSearcher{}, client)

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	_, err = w.SubmitTurn(context.Background(), "u1", session.UUID, "anything")
	require.NoError(t, err)
	assert.Contains(t, client.gotSystem, prompts.NoDocumentsMarker)
}

func TestSubmitTurnGenerationFailurePersistsFallback(t *testing.T) {
	store := newMemorySessionStore()
	client := &stubClient{err: errors.New("llm down")}
	w := newWorkflow(store, &stubSearcher{}, client)

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	result, err := w.SubmitTurn(context.Background(), "u1", session.UUID, "hello there")
	require.NoError(t, err)
	assert.Equal(t, generator.FallbackReply, result.AssistantMessage.Content)

	persisted := storedMessages(t, store, session.UUID)
	require.Len(t, persisted, 2)
	assert.Equal(t, generator.FallbackReply, persisted[1].Content)
}

func TestSubmitTurnCallerErrors(t *testing.T) {
	store := newMemorySessionStore()
	w := newWorkflow(store, &stubSearcher{}, &stubClient{reply: "ok"})

	_, err := w.SubmitTurn(context.Background(), "u1", uuid.Nil, "hello")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	_, err = w.SubmitTurn(context.Background(), "u1", session.UUID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = w.SubmitTurn(context.Background(), "u1", uuid.New(), "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// another user's session looks like a missing one
	_, err = w.SubmitTurn(context.Background(), "u2", session.UUID, "hello")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSubmitTurnStoreFailurePropagates(t *testing.T) {
	store := newMemorySessionStore()
	w := newWorkflow(store, &stubSearcher{}, &stubClient{reply: "ok"})

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)

	store.updErr = errors.New("store unavailable")
	_, err = w.SubmitTurn(context.Background(), "u1", session.UUID, "hello")
	assert.Error(t, err)
}

func TestSubmitTurnUpdatedAtAdvances(t *testing.T) {
	store := newMemorySessionStore()
	w := newWorkflow(store, &stubSearcher{}, &stubClient{reply: "ok"})

	session, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)
	createdAt := session.CreatedAt

	_, err = w.SubmitTurn(context.Background(), "u1", session.UUID, "hello")
	require.NoError(t, err)

	reloaded, err := store.GetByID(context.Background(), session.UUID)
	require.NoError(t, err)
	assert.False(t, reloaded.UpdatedAt.Before(createdAt))
	assert.True(t, reloaded.UpdatedAt.After(createdAt))
}

func TestDeleteEmptyOnlyRemovesEmptySessionsForOwner(t *testing.T) {
	store := newMemorySessionStore()
	w := newWorkflow(store, &stubSearcher{}, &stubClient{reply: "ok"})

	empty, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)
	active, err := store.Create(context.Background(), "u1")
	require.NoError(t, err)
	otherEmpty, err := store.Create(context.Background(), "u2")
	require.NoError(t, err)

	_, err = w.SubmitTurn(context.Background(), "u1", active.UUID, "keep me")
	require.NoError(t, err)

	deleted, err := store.DeleteEmpty(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	gone, err := store.GetByID(context.Background(), empty.UUID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := store.GetByID(context.Background(), active.UUID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	// the other owner's empty session is untouched
	others, err := store.GetByID(context.Background(), otherEmpty.UUID)
	require.NoError(t, err)
	assert.NotNil(t, others)
}
