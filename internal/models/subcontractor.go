package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcontractor is a business or individual hired to perform specific work.
type Subcontractor struct {
	UUID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Name        string    `gorm:"not null" json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	UnitNumber  string    `json:"unit_number"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	ZipCode     string    `json:"zip_code"`
	TaxID       string    `json:"tax_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Subcontractor) TableName() string {
	return "subcontractors"
}

// SubcontractorProject is the junction record assigning a subcontractor to a
// project. The whole assignment set for a subcontractor is replaced in a
// single transaction.
type SubcontractorProject struct {
	SubcontractorID uuid.UUID `gorm:"type:uuid;primaryKey" json:"subcontractor_id"`
	ProjectID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	AssignedAt      time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}

func (SubcontractorProject) TableName() string {
	return "subcontractor_projects"
}
