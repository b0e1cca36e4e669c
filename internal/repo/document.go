package repo

import (
	"context"

	"github.com/shahparacha/timeprint-gpt/internal/models"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentRepo struct {
	db *gorm.DB
}

// ScoredChunk pairs a chunk with its cosine similarity against the query
// vector.
type ScoredChunk struct {
	models.DocumentChunk
	Similarity float64
}

type DocumentRepoInterface interface {
	InsertChunks(ctx context.Context, chunks []models.DocumentChunk) error
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID, userID string) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]ScoredChunk, error)
}

func NewDocumentRepository(db *gorm.DB) DocumentRepoInterface {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) InsertChunks(ctx context.Context, chunks []models.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&chunks).Error
}

func (r *DocumentRepo) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("document_id = ? AND user_id = ?", documentID, userID).
		Delete(&models.DocumentChunk{})
	return result.RowsAffected, result.Error
}

// SearchSimilar ranks the user's chunks by pgvector cosine distance.
// Cosine distance is 1 - cosine_similarity, so similarity is reported as
// 1 - (embedding <=> query).
func (r *DocumentRepo) SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]ScoredChunk, error) {
	if limit <= 0 {
		limit = 5
	}
	queryVector := pgvector.NewVector(embedding)

	var results []ScoredChunk
	err := r.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document_embeddings.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("user_id = ?", userID).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
