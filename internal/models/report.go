package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a field report file recorded by a worker on a project.
type Report struct {
	UUID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Title      string    `json:"title"`
	FilePath   string    `gorm:"not null" json:"file_path"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	ReportDate time.Time `gorm:"not null" json:"report_date"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"worker_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
