package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/libraries"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
)

type BlueprintHandler struct {
	repo   repo.BlueprintRepoInterface
	store  libraries.ObjectStore
	logger *zap.Logger
}

func NewBlueprintHandler(repo repo.BlueprintRepoInterface, store libraries.ObjectStore, logger *zap.Logger) *BlueprintHandler {
	return &BlueprintHandler{repo: repo, store: store, logger: logger}
}

// CreateBlueprint accepts a multipart form with a "file" part plus title and
// project_id fields. The file goes to the object store, the metadata to the
// database.
func (h *BlueprintHandler) CreateBlueprint(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.FormValue("project_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
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

	path, err := h.store.Save(c.Context(), "blueprints", fileHeader.Filename, src)
	if err != nil {
		h.logger.Error("failed to store blueprint file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store blueprint file",
		})
	}

	id, err := h.repo.Create(c.Context(), &models.Blueprint{
		Title:     title,
		FilePath:  path,
		FileType:  filepath.Ext(fileHeader.Filename),
		FileSize:  fileHeader.Size,
		ProjectID: projectID,
	})
	if err != nil {
		h.logger.Error("failed to create blueprint", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create blueprint",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":      id.String(),
		"file_path": path,
		"message":   "Blueprint created successfully",
	})
}

func (h *BlueprintHandler) GetAllBlueprints(c *fiber.Ctx) error {
	if pid := c.Query("projectId"); pid != "" {
		projectID, err := uuid.Parse(pid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid project ID",
			})
		}
		blueprints, err := h.repo.ListByProject(c.Context(), projectID)
		if err != nil {
			h.logger.Error("failed to list blueprints", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get blueprints",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"blueprints": blueprints,
		})
	}

	blueprints, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list blueprints", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get blueprints",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"blueprints": blueprints,
	})
}

func (h *BlueprintHandler) GetBlueprint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("blueprintId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid blueprint ID",
		})
	}

	blueprint, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get blueprint", zap.String("blueprint_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get blueprint",
		})
	}
	if blueprint == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blueprint not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"blueprint": blueprint,
	})
}

// UpdateBlueprint changes the title; the stored file is immutable.
func (h *BlueprintHandler) UpdateBlueprint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("blueprintId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid blueprint ID",
		})
	}

	var dto struct {
		Title string `json:"title" validate:"required"`
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

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load blueprint", zap.String("blueprint_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update blueprint",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blueprint not found",
		})
	}

	existing.Title = dto.Title
	if err := h.repo.Update(c.Context(), existing); err != nil {
		h.logger.Error("failed to update blueprint", zap.String("blueprint_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update blueprint",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Blueprint updated successfully",
	})
}

func (h *BlueprintHandler) DeleteBlueprint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("blueprintId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid blueprint ID",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load blueprint", zap.String("blueprint_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete blueprint",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blueprint not found",
		})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.Error("failed to delete blueprint", zap.String("blueprint_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete blueprint",
		})
	}

	// file removal is best effort; an orphaned object is not worth a 500
	if err := h.store.Delete(c.Context(), existing.FilePath); err != nil {
		h.logger.Warn("failed to delete blueprint file", zap.String("path", existing.FilePath), zap.Error(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Blueprint deleted successfully",
	})
}
