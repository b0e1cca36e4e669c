package models

import (
	"time"

	"github.com/google/uuid"
)

// Worker is an individual associated with a subcontractor.
type Worker struct {
	UUID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	FirstName       string    `gorm:"not null" json:"first_name"`
	LastName        string    `gorm:"not null" json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	SubcontractorID uuid.UUID `gorm:"type:uuid;not null;index" json:"subcontractor_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Worker) TableName() string {
	return "workers"
}

// WorkerProject is the junction record assigning a worker to a project.
type WorkerProject struct {
	WorkerID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"worker_id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}

func (WorkerProject) TableName() string {
	return "worker_projects"
}
