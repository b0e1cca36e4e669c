package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

type ProjectRepoInterface interface {
	Create(ctx context.Context, project *models.Project) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID, orgID string) (*models.Project, error)
	ListByOrg(ctx context.Context, orgID string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID, orgID string) error
}

func NewProjectRepository(db *gorm.DB) ProjectRepoInterface {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Create(ctx context.Context, project *models.Project) (uuid.UUID, error) {
	project.UUID = uuid.New()
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(project).Error
	return project.UUID, err
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID, orgID string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		First(&project, "uuid = ? AND org_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepo) ListByOrg(ctx context.Context, orgID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("name asc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("uuid = ? AND org_id = ?", project.UUID, project.OrgID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"address":     project.Address,
			"city":        project.City,
			"state":       project.State,
			"country":     project.Country,
			"zip_code":    project.ZipCode,
			"updated_at":  project.UpdatedAt,
		}).Error
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID, orgID string) error {
	return r.db.WithContext(ctx).
		Where("uuid = ? AND org_id = ?", id, orgID).
		Delete(&models.Project{}).Error
}
