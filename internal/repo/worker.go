package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkerRepo struct {
	db *gorm.DB
}

type WorkerRepoInterface interface {
	Create(ctx context.Context, worker *models.Worker, projectIDs []uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	List(ctx context.Context) ([]models.Worker, error)
	ListBySubcontractor(ctx context.Context, subcontractorID uuid.UUID) ([]models.Worker, error)
	Update(ctx context.Context, worker *models.Worker, projectIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ProjectIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

func NewWorkerRepository(db *gorm.DB) WorkerRepoInterface {
	return &WorkerRepo{db: db}
}

func (r *WorkerRepo) Create(ctx context.Context, worker *models.Worker, projectIDs []uuid.UUID) (uuid.UUID, error) {
	worker.UUID = uuid.New()
	worker.CreatedAt = time.Now()
	worker.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(worker).Error; err != nil {
			return err
		}
		return replaceAssignments(tx, &models.WorkerProject{}, "worker_id", worker.UUID, projectIDs, func(projectID uuid.UUID) interface{} {
			return &models.WorkerProject{WorkerID: worker.UUID, ProjectID: projectID}
		})
	})
	return worker.UUID, err
}

func (r *WorkerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).First(&worker, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepo) List(ctx context.Context) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).
		Order("last_name asc").
		Order("first_name asc").
		Find(&workers).Error
	return workers, err
}

func (r *WorkerRepo) ListBySubcontractor(ctx context.Context, subcontractorID uuid.UUID) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.WithContext(ctx).
		Where("subcontractor_id = ?", subcontractorID).
		Order("last_name asc").
		Order("first_name asc").
		Find(&workers).Error
	return workers, err
}

func (r *WorkerRepo) Update(ctx context.Context, worker *models.Worker, projectIDs []uuid.UUID) error {
	worker.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Worker{}).
			Where("uuid = ?", worker.UUID).
			Updates(map[string]interface{}{
				"first_name":       worker.FirstName,
				"last_name":        worker.LastName,
				"email":            worker.Email,
				"phone":            worker.Phone,
				"subcontractor_id": worker.SubcontractorID,
				"updated_at":       worker.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return replaceAssignments(tx, &models.WorkerProject{}, "worker_id", worker.UUID, projectIDs, func(projectID uuid.UUID) interface{} {
			return &models.WorkerProject{WorkerID: worker.UUID, ProjectID: projectID}
		})
	})
}

func (r *WorkerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).Delete(&models.WorkerProject{}).Error; err != nil {
			return err
		}
		return tx.Where("uuid = ?", id).Delete(&models.Worker{}).Error
	})
}

func (r *WorkerRepo) ProjectIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.WorkerProject{}).
		Where("worker_id = ?", id).
		Pluck("project_id", &ids).Error
	return ids, err
}
