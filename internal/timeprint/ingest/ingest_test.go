package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/shahparacha/timeprint-gpt/internal/models"
	"github.com/shahparacha/timeprint-gpt/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBatchEmbedder struct {
	calls int
}

func (f *fakeBatchEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1}, nil
}

func (f *fakeBatchEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i]))}
	}
	return vectors, nil
}

type fakeDocStore struct {
	inserted []models.DocumentChunk
	deleted  map[uuid.UUID]string
}

func (f *fakeDocStore) InsertChunks(ctx context.Context, chunks []models.DocumentChunk) error {
	f.inserted = append(f.inserted, chunks...)
	return nil
}

func (f *fakeDocStore) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID, userID string) (int64, error) {
	if f.deleted == nil {
		f.deleted = make(map[uuid.UUID]string)
	}
	f.deleted[documentID] = userID
	count := int64(0)
	for _, chunk := range f.inserted {
		if chunk.DocumentID == documentID && chunk.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeDocStore) SearchSimilar(ctx context.Context, embedding []float32, userID string, limit int) ([]repo.ScoredChunk, error) {
	return nil, nil
}

func TestChunkShortText(t *testing.T) {
	chunks := Chunk("short text", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestChunkOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 runes
	chunks := Chunk(text, 100, 20)

	require.True(t, len(chunks) > 1)
	// adjacent chunks share the overlap window
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	assert.Equal(t, string(first[len(first)-20:]), string(second[:20]))
}

func TestChunkEmptyText(t *testing.T) {
	assert.Nil(t, Chunk("", 100, 10))
	assert.Empty(t, Chunk("    ", 100, 10))
}

func TestIndexDocumentWritesAllChunks(t *testing.T) {
	embedder := &fakeBatchEmbedder{}
	store := &fakeDocStore{}
	ingestor := New(embedder, store, zap.NewNop())

	content := strings.Repeat("construction safety requirements. ", 200)
	docID, written, err := ingestor.IndexDocument(context.Background(), "u1", "OSHA Notes", content, "/osha.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, docID)
	assert.Equal(t, written, len(store.inserted))
	for i, chunk := range store.inserted {
		assert.Equal(t, docID, chunk.DocumentID)
		assert.Equal(t, "u1", chunk.UserID)
		assert.Equal(t, "OSHA Notes", chunk.Title)
		assert.Equal(t, "/osha.pdf", chunk.URL)
		assert.Equal(t, i, chunk.ChunkIndex)
	}
}

func TestIndexDocumentRejectsEmptyContent(t *testing.T) {
	ingestor := New(&fakeBatchEmbedder{}, &fakeDocStore{}, zap.NewNop())
	_, _, err := ingestor.IndexDocument(context.Background(), "u1", "t", "   ", "")
	assert.Error(t, err)
}

func TestRemoveDocumentScopedToUser(t *testing.T) {
	embedder := &fakeBatchEmbedder{}
	store := &fakeDocStore{}
	ingestor := New(embedder, store, zap.NewNop())

	docID, written, err := ingestor.IndexDocument(context.Background(), "u1", "t", "some indexed content", "")
	require.NoError(t, err)
	require.Equal(t, 1, written)

	deleted, err := ingestor.RemoveDocument(context.Background(), "u1", docID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, "u1", store.deleted[docID])
}
