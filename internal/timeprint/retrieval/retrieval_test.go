package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/shahparacha/timeprint-gpt/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeChunkStore struct {
	calls  int
	err    error
	chunks []repo.ScoredChunk
}

func (f *fakeChunkStore) SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]repo.ScoredChunk, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chunks, nil
}

func scoredChunk(title, content, url string, similarity float64) repo.ScoredChunk {
	chunk := repo.ScoredChunk{Similarity: similarity}
	chunk.Title = title
	chunk.Content = content
	chunk.URL = url
	return chunk
}

func TestSearchEmptyQuerySkipsBackends(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeChunkStore{}
	searcher := NewVectorSearcher(embedder, store, zap.NewNop())

	results := searcher.Search(context.Background(), "   ", "u1", 5)

	assert.Empty(t, results)
	assert.Zero(t, embedder.calls)
	assert.Zero(t, store.calls)
}

func TestSearchMapsChunksToResults(t *testing.T) {
	store := &fakeChunkStore{chunks: []repo.ScoredChunk{
		scoredChunk("Spec A", "Depth: 3m", "/a.pdf", 0.9),
	}}
	searcher := NewVectorSearcher(&fakeEmbedder{}, store, zap.NewNop())

	results := searcher.Search(context.Background(), "foundation depth", "u1", 5)

	require.Len(t, results, 1)
	assert.Equal(t, "Spec A", results[0].Title)
	assert.Equal(t, "Depth: 3m", results[0].Content)
	assert.Equal(t, "/a.pdf", results[0].URL)
	assert.Equal(t, 0.9, results[0].Certainty)
}

func TestSearchClampsNegativeSimilarity(t *testing.T) {
	store := &fakeChunkStore{chunks: []repo.ScoredChunk{
		scoredChunk("Spec B", "n/a", "/b.pdf", -0.2),
	}}
	searcher := NewVectorSearcher(&fakeEmbedder{}, store, zap.NewNop())

	results := searcher.Search(context.Background(), "anything", "u1", 5)

	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Certainty)
}

func TestSearchDegradesOnEmbedderFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("embedding service down")}
	store := &fakeChunkStore{}
	searcher := NewVectorSearcher(embedder, store, zap.NewNop())

	results := searcher.Search(context.Background(), "foundation depth", "u1", 5)

	assert.Empty(t, results)
	assert.Zero(t, store.calls)
}

func TestSearchDegradesOnStoreFailure(t *testing.T) {
	store := &fakeChunkStore{err: errors.New("db unavailable")}
	searcher := NewVectorSearcher(&fakeEmbedder{}, store, zap.NewNop())

	results := searcher.Search(context.Background(), "foundation depth", "u1", 5)

	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestSearchDefaultLimit(t *testing.T) {
	var gotLimit int
	store := &fakeChunkStore{}
	searcher := NewVectorSearcher(&fakeEmbedder{}, limitRecorder{store, &gotLimit}, zap.NewNop())

	searcher.Search(context.Background(), "query", "u1", 0)
	assert.Equal(t, DefaultLimit, gotLimit)
}

type limitRecorder struct {
	inner *fakeChunkStore
	limit *int
}

func (r limitRecorder) SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]repo.ScoredChunk, error) {
	*r.limit = limit
	return r.inner.SearchSimilar(ctx, embedding, userID, limit)
}
