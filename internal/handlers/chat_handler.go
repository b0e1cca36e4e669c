package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/api/middleware"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/workflow"
)

type ChatHandler struct {
	sessions repo.ChatSessionRepoInterface
	workflow *workflow.Workflow
	logger   *zap.Logger
}

func NewChatHandler(sessions repo.ChatSessionRepoInterface, wf *workflow.Workflow, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		workflow: wf,
		logger:   logger,
	}
}

// CreateSession starts a fresh session titled "New Chat" with no messages.
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	session, err := h.sessions.Create(c.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("failed to create chat session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create chat session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session": session,
	})
}

// ListSessions returns the caller's sessions, most recently updated first.
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.sessions.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("failed to list chat sessions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list chat sessions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sessions": sessions,
	})
}

// SearchSessions filters the caller's sessions by case-insensitive substring
// over titles and message contents. An empty query returns everything.
func (h *ChatHandler) SearchSessions(c *fiber.Ctx) error {
	sessions, err := h.sessions.ListByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("failed to search chat sessions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search chat sessions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sessions": repo.FilterSessions(sessions, c.Query("q")),
	})
}

// GetSession returns one session with its full message history.
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID",
		})
	}

	session, err := h.sessions.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load chat session", zap.String("session_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat session",
		})
	}
	if session == nil || session.UserID != middleware.UserID(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Chat session not found",
		})
	}

	messages, err := session.DecodeMessages()
	if err != nil {
		h.logger.Error("failed to decode session messages", zap.String("session_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat session",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session":  session,
		"messages": messages,
	})
}

// SubmitTurn runs one full chat turn and returns both new messages plus the
// updated session.
func (h *ChatHandler) SubmitTurn(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID",
		})
	}

	var dto struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.workflow.SubmitTurn(c.Context(), middleware.UserID(c), id, dto.Content)
	switch {
	case errors.Is(err, workflow.ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, workflow.ErrSessionNotFound), errors.Is(err, workflow.ErrNotOwner):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Chat session not found",
		})
	case err != nil:
		h.logger.Error("chat turn failed", zap.String("session_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// DeleteEmptySessions removes all of the caller's sessions that never
// received a message.
func (h *ChatHandler) DeleteEmptySessions(c *fiber.Ctx) error {
	deleted, err := h.sessions.DeleteEmpty(c.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.Error("failed to delete empty sessions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete empty sessions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted": deleted,
	})
}
