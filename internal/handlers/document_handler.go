package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/api/middleware"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/ingest"
)

// DocumentHandler manages the documents behind chat retrieval: index new
// content into the vector store, remove it again.
type DocumentHandler struct {
	ingestor *ingest.Ingestor
	logger   *zap.Logger
}

func NewDocumentHandler(ingestor *ingest.Ingestor, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{ingestor: ingestor, logger: logger}
}

func (h *DocumentHandler) IndexDocument(c *fiber.Ctx) error {
	var dto struct {
		Title   string `json:"title" validate:"required"`
		Content string `json:"content" validate:"required"`
		URL     string `json:"url"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}

	docID, chunks, err := h.ingestor.IndexDocument(c.Context(), middleware.UserID(c), dto.Title, dto.Content, dto.URL)
	if err != nil {
		h.logger.Error("failed to index document", zap.String("title", dto.Title), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to index document",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document_id": docID.String(),
		"chunks":      chunks,
		"message":     "Document indexed successfully",
	})
}

func (h *DocumentHandler) RemoveDocument(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	deleted, err := h.ingestor.RemoveDocument(c.Context(), middleware.UserID(c), docID)
	if err != nil {
		h.logger.Error("failed to remove document", zap.String("document_id", docID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove document",
		})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted": deleted,
		"message": "Document removed successfully",
	})
}
