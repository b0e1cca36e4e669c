package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/api/middleware"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
)

// for simple crud operations service layer is not required
type ProjectHandler struct {
	repo   repo.ProjectRepoInterface
	logger *zap.Logger
}

func NewProjectHandler(repo repo.ProjectRepoInterface, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{repo: repo, logger: logger}
}

type projectDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	ZipCode     string `json:"zip_code"`
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var dto projectDTO
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

	id, err := h.repo.Create(c.Context(), &models.Project{
		Name:        dto.Name,
		Description: dto.Description,
		Address:     dto.Address,
		City:        dto.City,
		State:       dto.State,
		Country:     dto.Country,
		ZipCode:     dto.ZipCode,
		OrgID:       middleware.OrgID(c),
	})
	if err != nil {
		h.logger.Error("failed to create project", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Project created successfully",
	})
}

func (h *ProjectHandler) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.repo.ListByOrg(c.Context(), middleware.OrgID(c))
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get projects",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"projects": projects,
	})
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	project, err := h.repo.GetByID(c.Context(), id, middleware.OrgID(c))
	if err != nil {
		h.logger.Error("failed to get project", zap.String("project_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get project",
		})
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"project": project,
	})
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	var dto projectDTO
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

	existing, err := h.repo.GetByID(c.Context(), id, middleware.OrgID(c))
	if err != nil {
		h.logger.Error("failed to load project", zap.String("project_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update project",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	existing.Name = dto.Name
	existing.Description = dto.Description
	existing.Address = dto.Address
	existing.City = dto.City
	existing.State = dto.State
	existing.Country = dto.Country
	existing.ZipCode = dto.ZipCode

	if err := h.repo.Update(c.Context(), existing); err != nil {
		h.logger.Error("failed to update project", zap.String("project_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update project",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project updated successfully",
	})
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}

	if err := h.repo.Delete(c.Context(), id, middleware.OrgID(c)); err != nil {
		h.logger.Error("failed to delete project", zap.String("project_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete project",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project deleted successfully",
	})
}
