package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/retrieval"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller errors: rejected immediately, surfaced verbatim, never retried.
var (
	ErrEmptyMessage    = errors.New("session ID and content are required")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrNotOwner        = errors.New("chat session not found") // do not leak other users' session ids
)

// replyGenerator produces the assistant reply. Implementations degrade to a
// fallback string on failure instead of returning an error.
type replyGenerator interface {
	Generate(ctx context.Context, history []models.Message, docs []models.DocumentSearchResult) string
}

// TurnResult is everything one completed turn produced.
type TurnResult struct {
	UserMessage      models.Message      `json:"user_message"`
	AssistantMessage models.Message      `json:"assistant_message"`
	Session          *models.ChatSession `json:"session"`
}

// Workflow runs one chat turn end to end: load session, append the user
// message, retrieve context, generate a reply, persist. The two session
// writes per turn are intentionally independent; a crash in between leaves
// a user message with no reply, which the product accepts and displays as
// unanswered.
type Workflow struct {
	sessions  repo.ChatSessionRepoInterface
	searcher  retrieval.Searcher
	generator replyGenerator
	logger    *zap.Logger

	// serializes turns on the same session; concurrent turns on one
	// session would otherwise race on the blob read-modify-write
	mu       sync.Mutex
	sessionM map[uuid.UUID]*sync.Mutex
}

func New(sessions repo.ChatSessionRepoInterface, searcher retrieval.Searcher, generator replyGenerator, logger *zap.Logger) *Workflow {
	return &Workflow{
		sessions:  sessions,
		searcher:  searcher,
		generator: generator,
		logger:    logger,
		sessionM:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (w *Workflow) sessionLock(id uuid.UUID) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	lock, ok := w.sessionM[id]
	if !ok {
		lock = &sync.Mutex{}
		w.sessionM[id] = lock
	}
	return lock
}

// SubmitTurn processes one user turn and returns both new messages plus the
// final session state.
func (w *Workflow) SubmitTurn(ctx context.Context, userID string, sessionID uuid.UUID, content string) (*TurnResult, error) {
	if sessionID == uuid.Nil || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	lock := w.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := w.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrNotOwner
	}

	messages, err := session.DecodeMessages()
	if err != nil {
		return nil, err
	}

	userMessage := models.NewMessage(models.RoleUser, content)
	messages = append(messages, userMessage)

	// the first user message names the session
	title := session.Title
	if title == models.DefaultSessionTitle {
		title = truncateTitle(content)
	}

	// first write: the user message is durable before any external call
	if err := w.sessions.Update(ctx, sessionID, repo.SessionPatch{
		Title:    &title,
		Messages: messages,
	}); err != nil {
		return nil, err
	}

	docs := w.searcher.Search(ctx, content, userID, retrieval.DefaultLimit)
	reply := w.generator.Generate(ctx, messages, docs)

	assistantMessage := models.NewMessage(models.RoleAssistant, reply)
	messages = append(messages, assistantMessage)

	// second write completes the turn
	if err := w.sessions.Update(ctx, sessionID, repo.SessionPatch{
		Messages: messages,
	}); err != nil {
		return nil, err
	}

	session.Title = title
	if err := session.SetMessages(messages); err != nil {
		return nil, err
	}

	return &TurnResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		Session:          session,
	}, nil
}

func truncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= models.TitleMaxLen {
		return content
	}
	return string(runes[:models.TitleMaxLen])
}
