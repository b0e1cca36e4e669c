package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdentificationRepo struct {
	db *gorm.DB
}

type IdentificationRepoInterface interface {
	Create(ctx context.Context, identification *models.WorkerIdentification) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkerIdentification, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.WorkerIdentification, error)
	Update(ctx context.Context, identification *models.WorkerIdentification) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewIdentificationRepository(db *gorm.DB) IdentificationRepoInterface {
	return &IdentificationRepo{db: db}
}

func (r *IdentificationRepo) Create(ctx context.Context, identification *models.WorkerIdentification) (uuid.UUID, error) {
	identification.UUID = uuid.New()
	identification.CreatedAt = time.Now()
	identification.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(identification).Error
	return identification.UUID, err
}

func (r *IdentificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkerIdentification, error) {
	var identification models.WorkerIdentification
	err := r.db.WithContext(ctx).First(&identification, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &identification, nil
}

func (r *IdentificationRepo) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.WorkerIdentification, error) {
	var identifications []models.WorkerIdentification
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Find(&identifications).Error
	return identifications, err
}

func (r *IdentificationRepo) Update(ctx context.Context, identification *models.WorkerIdentification) error {
	identification.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&models.WorkerIdentification{}).
		Where("uuid = ?", identification.UUID).
		Updates(map[string]interface{}{
			"file_name":   identification.FileName,
			"file_path":   identification.FilePath,
			"file_type":   identification.FileType,
			"file_size":   identification.FileSize,
			"issue_date":  identification.IssueDate,
			"expiry_date": identification.ExpiryDate,
			"updated_at":  identification.UpdatedAt,
		}).Error
}

func (r *IdentificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.WorkerIdentification{}).Error
}
