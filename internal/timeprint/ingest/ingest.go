package ingest

import (
	"context"
	"fmt"
	"strings"

	llmHandlers "github.com/shahparacha/timeprint-gpt/internal/llm_handlers"
	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const (
	// DefaultChunkSize is the rune window per chunk.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap keeps adjacent chunks overlapping so a fact on a
	// boundary stays retrievable.
	DefaultChunkOverlap = 200
	// embedBatchSize caps how many chunks go to the embedder per call.
	embedBatchSize = 16
)

// Ingestor turns caller-supplied document text into embedded chunks the
// retrieval layer can search.
type Ingestor struct {
	embedder llmHandlers.Embedder
	docs     repo.DocumentRepoInterface
	logger   *zap.Logger
}

func New(embedder llmHandlers.Embedder, docs repo.DocumentRepoInterface, logger *zap.Logger) *Ingestor {
	return &Ingestor{embedder: embedder, docs: docs, logger: logger}
}

// IndexDocument chunks, embeds, and stores one document for a user. It
// returns the new document id and the number of chunks written.
func (i *Ingestor) IndexDocument(ctx context.Context, userID, title, content, url string) (uuid.UUID, int, error) {
	if strings.TrimSpace(content) == "" {
		return uuid.Nil, 0, fmt.Errorf("document content is required")
	}

	documentID := uuid.New()
	chunks := Chunk(content, DefaultChunkSize, DefaultChunkOverlap)

	written := 0
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors, err := i.embedder.EmbedDocuments(ctx, batch)
		if err != nil {
			return uuid.Nil, written, fmt.Errorf("embed batch: %w", err)
		}
		if len(vectors) != len(batch) {
			return uuid.Nil, written, fmt.Errorf("embed size mismatch: got %d want %d", len(vectors), len(batch))
		}

		rows := make([]models.DocumentChunk, len(batch))
		for j := range batch {
			rows[j] = models.DocumentChunk{
				UUID:       uuid.New(),
				DocumentID: documentID,
				Title:      title,
				Content:    batch[j],
				URL:        url,
				ChunkIndex: start + j,
				Embedding:  pgvector.NewVector(vectors[j]),
				UserID:     userID,
			}
		}
		if err := i.docs.InsertChunks(ctx, rows); err != nil {
			return uuid.Nil, written, fmt.Errorf("insert chunks: %w", err)
		}
		written += len(rows)
	}

	i.logger.Info("document indexed",
		zap.String("document_id", documentID.String()),
		zap.Int("chunks", written),
	)
	return documentID, written, nil
}

// RemoveDocument deletes every chunk of a document owned by the user.
func (i *Ingestor) RemoveDocument(ctx context.Context, userID string, documentID uuid.UUID) (int64, error) {
	return i.docs.DeleteByDocumentID(ctx, documentID, userID)
}

// Chunk splits text into rune windows of at most size runes, with overlap
// runes shared between adjacent chunks. Whitespace-only chunks are dropped.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		piece := strings.TrimSpace(string(runes[start:end]))
		if piece != "" {
			chunks = append(chunks, piece)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}
