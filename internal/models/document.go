package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// DocumentChunk is one embedded slice of an indexed document. Retrieval
// ranks chunks by cosine distance against a query vector, scoped to the
// owning user.
type DocumentChunk struct {
	UUID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"uuid"`
	DocumentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"document_id"`
	Title      string          `json:"title"`
	Content    string          `gorm:"type:text" json:"content"`
	URL        string          `json:"url"`
	ChunkIndex int             `gorm:"default:0" json:"chunk_index"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)" json:"-"` // text-embedding-3-small dimensions
	UserID     string          `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (DocumentChunk) TableName() string {
	return "document_embeddings"
}
