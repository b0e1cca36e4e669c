package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkerIdentification is an identification document uploaded for a worker.
type WorkerIdentification struct {
	UUID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"uuid"`
	FileName   string     `gorm:"not null" json:"file_name"`
	FilePath   string     `gorm:"not null" json:"file_path"`
	FileType   string     `json:"file_type"`
	FileSize   int64      `json:"file_size"`
	IssueDate  *time.Time `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
	WorkerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"worker_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (WorkerIdentification) TableName() string {
	return "worker_identifications"
}
