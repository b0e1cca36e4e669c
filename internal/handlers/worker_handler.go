package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
)

type WorkerHandler struct {
	repo   repo.WorkerRepoInterface
	logger *zap.Logger
}

func NewWorkerHandler(repo repo.WorkerRepoInterface, logger *zap.Logger) *WorkerHandler {
	return &WorkerHandler{repo: repo, logger: logger}
}

type workerDTO struct {
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	SubcontractorID string   `json:"subcontractor_id" validate:"required,uuid4"`
	ProjectIDs      []string `json:"project_ids" validate:"dive,uuid4"`
}

func (h *WorkerHandler) CreateWorker(c *fiber.Ctx) error {
	var dto workerDTO
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

	subID, err := uuid.Parse(dto.SubcontractorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subcontractor ID",
		})
	}
	projectIDs, err := parseProjectIDs(dto.ProjectIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID in assignments",
		})
	}

	id, err := h.repo.Create(c.Context(), &models.Worker{
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Email:           dto.Email,
		Phone:           dto.Phone,
		SubcontractorID: subID,
	}, projectIDs)
	if err != nil {
		h.logger.Error("failed to create worker", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create worker",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Worker created successfully",
	})
}

func (h *WorkerHandler) GetAllWorkers(c *fiber.Ctx) error {
	// ?subcontractorId= narrows to one subcontractor's crew
	if sid := c.Query("subcontractorId"); sid != "" {
		subID, err := uuid.Parse(sid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid subcontractor ID",
			})
		}
		workers, err := h.repo.ListBySubcontractor(c.Context(), subID)
		if err != nil {
			h.logger.Error("failed to list workers", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get workers",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"workers": workers,
		})
	}

	workers, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list workers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get workers",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"workers": workers,
	})
}

func (h *WorkerHandler) GetWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	worker, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get worker", zap.String("worker_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get worker",
		})
	}
	if worker == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	projectIDs, err := h.repo.ProjectIDs(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get worker assignments", zap.String("worker_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get worker",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"worker":      worker,
		"project_ids": projectIDs,
	})
}

func (h *WorkerHandler) UpdateWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	var dto workerDTO
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

	subID, err := uuid.Parse(dto.SubcontractorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subcontractor ID",
		})
	}
	projectIDs, err := parseProjectIDs(dto.ProjectIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID in assignments",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load worker", zap.String("worker_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update worker",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	existing.FirstName = dto.FirstName
	existing.LastName = dto.LastName
	existing.Email = dto.Email
	existing.Phone = dto.Phone
	existing.SubcontractorID = subID

	if err := h.repo.Update(c.Context(), existing, projectIDs); err != nil {
		h.logger.Error("failed to update worker", zap.String("worker_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update worker",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Worker updated successfully",
	})
}

func (h *WorkerHandler) DeleteWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.Error("failed to delete worker", zap.String("worker_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete worker",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Worker deleted successfully",
	})
}
