package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
)

type SubcontractorHandler struct {
	repo   repo.SubcontractorRepoInterface
	logger *zap.Logger
}

func NewSubcontractorHandler(repo repo.SubcontractorRepoInterface, logger *zap.Logger) *SubcontractorHandler {
	return &SubcontractorHandler{repo: repo, logger: logger}
}

type subcontractorDTO struct {
	Name        string   `json:"name" validate:"required"`
	ContactName string   `json:"contact_name"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	UnitNumber  string   `json:"unit_number"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	ZipCode     string   `json:"zip_code"`
	TaxID       string   `json:"tax_id"`
	ProjectIDs  []string `json:"project_ids" validate:"dive,uuid4"`
}

func parseProjectIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *SubcontractorHandler) CreateSubcontractor(c *fiber.Ctx) error {
	var dto subcontractorDTO
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

	projectIDs, err := parseProjectIDs(dto.ProjectIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID in assignments",
		})
	}

	id, err := h.repo.Create(c.Context(), &models.Subcontractor{
		Name:        dto.Name,
		ContactName: dto.ContactName,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Address:     dto.Address,
		UnitNumber:  dto.UnitNumber,
		City:        dto.City,
		State:       dto.State,
		Country:     dto.Country,
		ZipCode:     dto.ZipCode,
		TaxID:       dto.TaxID,
	}, projectIDs)
	if err != nil {
		h.logger.Error("failed to create subcontractor", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create subcontractor",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Subcontractor created successfully",
	})
}

func (h *SubcontractorHandler) GetAllSubcontractors(c *fiber.Ctx) error {
	subs, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list subcontractors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subcontractors",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subcontractors": subs,
	})
}

func (h *SubcontractorHandler) GetSubcontractor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("subcontractorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subcontractor ID",
		})
	}

	sub, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get subcontractor", zap.String("subcontractor_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subcontractor",
		})
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subcontractor not found",
		})
	}

	projectIDs, err := h.repo.ProjectIDs(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get subcontractor assignments", zap.String("subcontractor_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get subcontractor",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subcontractor": sub,
		"project_ids":   projectIDs,
	})
}

func (h *SubcontractorHandler) UpdateSubcontractor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("subcontractorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subcontractor ID",
		})
	}

	var dto subcontractorDTO
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

	projectIDs, err := parseProjectIDs(dto.ProjectIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID in assignments",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load subcontractor", zap.String("subcontractor_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subcontractor",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subcontractor not found",
		})
	}

	existing.Name = dto.Name
	existing.ContactName = dto.ContactName
	existing.Email = dto.Email
	existing.Phone = dto.Phone
	existing.Address = dto.Address
	existing.UnitNumber = dto.UnitNumber
	existing.City = dto.City
	existing.State = dto.State
	existing.Country = dto.Country
	existing.ZipCode = dto.ZipCode
	existing.TaxID = dto.TaxID

	if err := h.repo.Update(c.Context(), existing, projectIDs); err != nil {
		h.logger.Error("failed to update subcontractor", zap.String("subcontractor_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subcontractor",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Subcontractor updated successfully",
	})
}

func (h *SubcontractorHandler) DeleteSubcontractor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("subcontractorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid subcontractor ID",
		})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.Error("failed to delete subcontractor", zap.String("subcontractor_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete subcontractor",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Subcontractor deleted successfully",
	})
}
