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

type ReportHandler struct {
	repo   repo.ReportRepoInterface
	store  libraries.ObjectStore
	logger *zap.Logger
}

func NewReportHandler(repo repo.ReportRepoInterface, store libraries.ObjectStore, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{repo: repo, store: store, logger: logger}
}

// CreateReport accepts a multipart form with a "file" part plus title,
// report_date (YYYY-MM-DD), project_id and worker_id fields.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.FormValue("project_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project ID",
		})
	}
	workerID, err := uuid.Parse(c.FormValue("worker_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid worker ID",
		})
	}

	reportDate := time.Now().UTC()
	if raw := c.FormValue("report_date"); raw != "" {
		reportDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid report date, expected YYYY-MM-DD",
			})
		}
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

	path, err := h.store.Save(c.Context(), "reports", fileHeader.Filename, src)
	if err != nil {
		h.logger.Error("failed to store report file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store report file",
		})
	}

	id, err := h.repo.Create(c.Context(), &models.Report{
		Title:      c.FormValue("title"),
		FilePath:   path,
		FileType:   filepath.Ext(fileHeader.Filename),
		FileSize:   fileHeader.Size,
		ReportDate: reportDate,
		ProjectID:  projectID,
		WorkerID:   workerID,
	})
	if err != nil {
		h.logger.Error("failed to create report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":      id.String(),
		"file_path": path,
		"message":   "Report created successfully",
	})
}

func (h *ReportHandler) GetAllReports(c *fiber.Ctx) error {
	if pid := c.Query("projectId"); pid != "" {
		projectID, err := uuid.Parse(pid)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid project ID",
			})
		}
		reports, err := h.repo.ListByProject(c.Context(), projectID)
		if err != nil {
			h.logger.Error("failed to list reports", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get reports",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"reports": reports,
		})
	}

	reports, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get reports",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reports": reports,
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report ID",
		})
	}

	report, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to get report", zap.String("report_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get report",
		})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"report": report,
	})
}

func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report ID",
		})
	}

	existing, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		h.logger.Error("failed to load report", zap.String("report_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete report",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		h.logger.Error("failed to delete report", zap.String("report_id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete report",
		})
	}

	if err := h.store.Delete(c.Context(), existing.FilePath); err != nil {
		h.logger.Warn("failed to delete report file", zap.String("path", existing.FilePath), zap.Error(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report deleted successfully",
	})
}
