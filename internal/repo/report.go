package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepo struct {
	db *gorm.DB
}

type ReportRepoInterface interface {
	Create(ctx context.Context, report *models.Report) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewReportRepository(db *gorm.DB) ReportRepoInterface {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) Create(ctx context.Context, report *models.Report) (uuid.UUID, error) {
	report.UUID = uuid.New()
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(report).Error
	return report.UUID, err
}

func (r *ReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).First(&report, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepo) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).Order("report_date desc").Find(&reports).Error
	return reports, err
}

func (r *ReportRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("report_date desc").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Report{}).Error
}
