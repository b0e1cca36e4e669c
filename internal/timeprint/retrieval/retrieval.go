package retrieval

import (
	"context"
	"strings"
	"time"

	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"

	"go.uber.org/zap"
)

// DefaultLimit is the number of snippets fetched per turn.
const DefaultLimit = 5

const searchTimeout = 10 * time.Second

// Searcher returns ranked document snippets for a query, scoped to one
// user's documents. A retrieval outage must never block a chat turn, so
// implementations degrade to an empty result list instead of failing.
type Searcher interface {
	Search(ctx context.Context, query, userID string, limit int) []models.DocumentSearchResult
}

// queryEmbedder is the slice of the embedding client retrieval needs.
type queryEmbedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// chunkSearcher is the slice of the document store retrieval needs.
type chunkSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]repo.ScoredChunk, error)
}

// VectorSearcher performs nearest-neighbor search over the pgvector-backed
// document store.
type VectorSearcher struct {
	embedder queryEmbedder
	docs     chunkSearcher
	logger   *zap.Logger
}

func NewVectorSearcher(embedder queryEmbedder, docs chunkSearcher, logger *zap.Logger) *VectorSearcher {
	return &VectorSearcher{embedder: embedder, docs: docs, logger: logger}
}

// Search embeds the query and ranks the user's chunks by cosine similarity.
// A blank query short-circuits to an empty list without touching the
// embedder or the store. Any backend failure degrades to an empty list.
func (s *VectorSearcher) Search(ctx context.Context, query, userID string, limit int) []models.DocumentSearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.DocumentSearchResult{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	embedding, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		s.logger.Warn("query embedding failed, continuing without context", zap.Error(err))
		return []models.DocumentSearchResult{}
	}

	chunks, err := s.docs.SearchSimilar(ctx, embedding, userID, limit)
	if err != nil {
		s.logger.Warn("document search failed, continuing without context", zap.Error(err))
		return []models.DocumentSearchResult{}
	}

	results := make([]models.DocumentSearchResult, len(chunks))
	for i, chunk := range chunks {
		certainty := chunk.Similarity
		if certainty < 0 {
			certainty = 0
		}
		results[i] = models.DocumentSearchResult{
			Content:   chunk.Content,
			Title:     chunk.Title,
			URL:       chunk.URL,
			Certainty: certainty,
		}
	}
	return results
}
