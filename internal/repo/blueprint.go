package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlueprintRepo struct {
	db *gorm.DB
}

type BlueprintRepoInterface interface {
	Create(ctx context.Context, blueprint *models.Blueprint) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blueprint, error)
	List(ctx context.Context) ([]models.Blueprint, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Blueprint, error)
	Update(ctx context.Context, blueprint *models.Blueprint) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewBlueprintRepository(db *gorm.DB) BlueprintRepoInterface {
	return &BlueprintRepo{db: db}
}

func (r *BlueprintRepo) Create(ctx context.Context, blueprint *models.Blueprint) (uuid.UUID, error) {
	blueprint.UUID = uuid.New()
	blueprint.CreatedAt = time.Now()
	blueprint.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(blueprint).Error
	return blueprint.UUID, err
}

func (r *BlueprintRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Blueprint, error) {
	var blueprint models.Blueprint
	err := r.db.WithContext(ctx).First(&blueprint, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blueprint, nil
}

func (r *BlueprintRepo) List(ctx context.Context) ([]models.Blueprint, error) {
	var blueprints []models.Blueprint
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&blueprints).Error
	return blueprints, err
}

func (r *BlueprintRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Blueprint, error) {
	var blueprints []models.Blueprint
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at desc").
		Find(&blueprints).Error
	return blueprints, err
}

func (r *BlueprintRepo) Update(ctx context.Context, blueprint *models.Blueprint) error {
	blueprint.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Model(&models.Blueprint{}).
		Where("uuid = ?", blueprint.UUID).
		Updates(map[string]interface{}{
			"title":      blueprint.Title,
			"file_path":  blueprint.FilePath,
			"file_type":  blueprint.FileType,
			"file_size":  blueprint.FileSize,
			"project_id": blueprint.ProjectID,
			"updated_at": blueprint.UpdatedAt,
		}).Error
}

func (r *BlueprintRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Blueprint{}).Error
}
