package repo

import (
	"context"
	"errors"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubcontractorRepo struct {
	db *gorm.DB
}

type SubcontractorRepoInterface interface {
	Create(ctx context.Context, sub *models.Subcontractor, projectIDs []uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subcontractor, error)
	List(ctx context.Context) ([]models.Subcontractor, error)
	Update(ctx context.Context, sub *models.Subcontractor, projectIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ProjectIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

func NewSubcontractorRepository(db *gorm.DB) SubcontractorRepoInterface {
	return &SubcontractorRepo{db: db}
}

func (r *SubcontractorRepo) Create(ctx context.Context, sub *models.Subcontractor, projectIDs []uuid.UUID) (uuid.UUID, error) {
	sub.UUID = uuid.New()
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return replaceAssignments(tx, &models.SubcontractorProject{}, "subcontractor_id", sub.UUID, projectIDs, func(projectID uuid.UUID) interface{} {
			return &models.SubcontractorProject{SubcontractorID: sub.UUID, ProjectID: projectID}
		})
	})
	return sub.UUID, err
}

func (r *SubcontractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.WithContext(ctx).First(&sub, "uuid = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubcontractorRepo) List(ctx context.Context) ([]models.Subcontractor, error) {
	var subs []models.Subcontractor
	err := r.db.WithContext(ctx).Order("name asc").Find(&subs).Error
	return subs, err
}

// Update rewrites the subcontractor record and replaces its whole project
// assignment set inside one transaction, so readers never observe a
// half-written set.
func (r *SubcontractorRepo) Update(ctx context.Context, sub *models.Subcontractor, projectIDs []uuid.UUID) error {
	sub.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Subcontractor{}).
			Where("uuid = ?", sub.UUID).
			Updates(map[string]interface{}{
				"name":         sub.Name,
				"contact_name": sub.ContactName,
				"email":        sub.Email,
				"phone":        sub.Phone,
				"address":      sub.Address,
				"unit_number":  sub.UnitNumber,
				"city":         sub.City,
				"state":        sub.State,
				"country":      sub.Country,
				"zip_code":     sub.ZipCode,
				"tax_id":       sub.TaxID,
				"updated_at":   sub.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return replaceAssignments(tx, &models.SubcontractorProject{}, "subcontractor_id", sub.UUID, projectIDs, func(projectID uuid.UUID) interface{} {
			return &models.SubcontractorProject{SubcontractorID: sub.UUID, ProjectID: projectID}
		})
	})
}

func (r *SubcontractorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subcontractor_id = ?", id).Delete(&models.SubcontractorProject{}).Error; err != nil {
			return err
		}
		return tx.Where("uuid = ?", id).Delete(&models.Subcontractor{}).Error
	})
}

func (r *SubcontractorRepo) ProjectIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.SubcontractorProject{}).
		Where("subcontractor_id = ?", id).
		Pluck("project_id", &ids).Error
	return ids, err
}

// replaceAssignments swaps a junction set for a new one inside the caller's
// transaction.
func replaceAssignments(tx *gorm.DB, junction interface{}, ownerColumn string, ownerID uuid.UUID, projectIDs []uuid.UUID, build func(uuid.UUID) interface{}) error {
	if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(junction).Error; err != nil {
		return err
	}
	for _, projectID := range projectIDs {
		if err := tx.Create(build(projectID)).Error; err != nil {
			return err
		}
	}
	return nil
}
