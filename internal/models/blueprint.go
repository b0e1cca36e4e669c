package models

import (
	"time"

	"github.com/google/uuid"
)

// Blueprint is a drawing file attached to a project.
type Blueprint struct {
	UUID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Title     string    `gorm:"not null" json:"title"`
	FilePath  string    `gorm:"not null" json:"file_path"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blueprint) TableName() string {
	return "blueprints"
}
