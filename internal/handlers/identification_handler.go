package handlers

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/libraries"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
)

type IdentificationHandler struct {
	repo   repo.IdentificationRepoInterface
	store  libraries.ObjectStore
	logger *zap.Logger
}

func NewIdentificationHandler(repo repo.IdentificationRepoInterface, store libraries.ObjectStore, logger *zap.Logger) *IdentificationHandler {
	return &IdentificationHandler{repo: repo, store: store, logger: logger}
}

// parseOptionalDate accepts "" as nil and otherwise requires YYYY-MM-DD.
func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateIdentification accepts a multipart form with a "file" part plus
// worker_id and optional issue_date / expiry_date fields.
func (h *IdentificationHandler) CreateIdentification(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.FormValue("worker_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	issueDate, err := parseOptionalDate(c.FormValue("issue_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid issue date, expected YYYY-MM-DD",
		})
	}
	expiryDate, err := parseOptionalDate(c.FormValue("expiry_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expiry date, expected YYYY-MM-DD",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	path, err := h.store.Save(c.Context(), "identifications", fileHeader.Filename, src)
	if err != nil {
		h.logger.Error("failed to store identification file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store identification file",
		})
	}

	id, err := h.repo.Create(c.Context(), &models.WorkerIdentification{
		FileName:   fileHeader.Filename,
		FilePath:   path,
		FileType:   filepath.Ext(fileHeader.Filename),
		FileSize:   fileHeader.Size,
		IssueDate:  issueDate,
		ExpiryDate: expiryDate,
		WorkerID:   workerID,
	})
	if err != nil {
		h.logger.Error("failed to create identification", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create identification",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":      id.String(),
		"file_path": path,
		"message":   "Identification created successfully",
	})
}

func (h *IdentificationHandler) GetIdentificationsByWorker(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	identifications, err := h.repo.ListByWorker(c.Context(), workerID)
	if err != nil {
		h.logger.Error("failed to list identifications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get identifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"identifications": identifications,
	})
}

func (h *IdentificationHandler) GetIdentification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("identificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid identification ID",
		})
	}

	identification, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get identification", zap.String("identification_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get identification",
		})
	}
	if identification == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Identification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"identification": identification,
	})
}

// UpdateIdentification changes the dates; the stored file is immutable.
func (h *IdentificationHandler) UpdateIdentification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("identificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid identification ID",
		})
	}

	var dto struct {
		IssueDate  string `json:"issue_date"`
		ExpiryDate string `json:"expiry_date"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	issueDate, err := parseOptionalDate(dto.IssueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid issue date, expected YYYY-MM-DD",
		})
	}
	expiryDate, err := parseOptionalDate(dto.ExpiryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expiry date, expected YYYY-MM-DD",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load identification", zap.String("identification_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update identification",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Identification not found",
		})
	}

	existing.IssueDate = issueDate
	existing.ExpiryDate = expiryDate

	if err := h.repo.Update(c.Context(), existing); err != nil {
		h.logger.Error("failed to update identification", zap.String("identification_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update identification",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Identification updated successfully",
	})
}

func (h *IdentificationHandler) DeleteIdentification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("identificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid identification ID",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load identification", zap.String("identification_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete identification",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Identification not found",
		})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.Error("failed to delete identification", zap.String("identification_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete identification",
		})
	}

	if err := h.store.Delete(c.Context(), existing.FilePath); err != nil {
		h.logger.Warn("failed to delete identification file", zap.String("path", existing.FilePath), zap.Error(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Identification deleted successfully",
	})
}
