package libraries

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/shahparacha/timeprint-gpt/internal/config"
)

// ObjectStore persists uploaded files and hands back a web-accessible path.
type ObjectStore interface {
	Save(ctx context.Context, kind, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// NewObjectStore picks the configured backend.
func NewObjectStore(ctx context.Context, cfg config.StorageConfig, credentialsB64 string) (ObjectStore, error) {
	switch cfg.Backend {
	case "gcs":
		return NewGCSStore(ctx, cfg.Bucket, credentialsB64)
	case "local":
		return NewLocalStore(cfg.LocalRoot), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// uniqueName prefixes the original filename with a uuid so uploads never
// collide.
func uniqueName(filename string) string {
	return fmt.Sprintf("%s-%s", uuid.NewString(), filepath.Base(filename))
}

// LocalStore writes uploads under <root>/uploads/<kind>/ on local disk.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Save(ctx context.Context, kind, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, "uploads", kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := uniqueName(filename)
	fullPath := filepath.Join(dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/uploads/" + kind + "/" + name, nil
}

func (s *LocalStore) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GCSStore writes uploads to a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket, credentialsB64 string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket not set")
	}
	if credentialsB64 == "" {
		return nil, fmt.Errorf("GCP service account credentials not set")
	}

	decoded, err := base64.StdEncoding.DecodeString(credentialsB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account json: %w", err)
	}

	client, err := storage.NewClient(ctx, option.WithCredentialsJSON(decoded))
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Save(ctx context.Context, kind, filename string, r io.Reader) (string, error) {
	key := "uploads/" + kind + "/" + uniqueName(filename)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
}

func (s *GCSStore) Delete(ctx context.Context, path string) error {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
	if len(path) <= len(prefix) {
		return nil
	}
	key := path[len(prefix):]
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
