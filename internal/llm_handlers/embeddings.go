package llmHandlers

import (
	"context"
	"encoding/base64"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// LangChainEmbedder embeds text through an OpenAI-compatible embeddings API.
type LangChainEmbedder struct {
	embedder *embeddings.EmbedderImpl
}

func NewLangChainEmbedder(model, baseURL, apiKey string) (*LangChainEmbedder, error) {
	opts := []openai.Option{
		openai.WithEmbeddingModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, openai.WithToken(apiKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return &LangChainEmbedder{embedder: embedder}, nil
}

func (e *LangChainEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.embedder.EmbedQuery(ctx, text)
}

func (e *LangChainEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.embedder.EmbedDocuments(ctx, texts)
}

// VertexEmbedder embeds text with a Google-published embedding model on
// Vertex AI via the prediction API.
type VertexEmbedder struct {
	client    *aiplatform.PredictionClient
	projectID string
	location  string
	modelID   string
}

func NewVertexEmbedder(ctx context.Context, projectID, location, modelID, credentialsB64 string) (*VertexEmbedder, error) {
	if credentialsB64 == "" {
		return nil, fmt.Errorf("service account credentials not set")
	}
	decoded, err := base64.StdEncoding.DecodeString(credentialsB64)
	if err != nil {
		return nil, fmt.Errorf("decode sa json: %w", err)
	}

	client, err := aiplatform.NewPredictionClient(ctx,
		option.WithCredentialsJSON(decoded),
		option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", location)),
	)
	if err != nil {
		return nil, fmt.Errorf("vertex.NewPredictionClient: %w", err)
	}

	return &VertexEmbedder{
		client:    client,
		projectID: projectID,
		location:  location,
		modelID:   modelID,
	}, nil
}

func (e *VertexEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *VertexEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	instances := make([]*structpb.Value, len(texts))
	for i, text := range texts {
		instance, err := structpb.NewStruct(map[string]interface{}{
			"content": text,
		})
		if err != nil {
			return nil, fmt.Errorf("build instance: %w", err)
		}
		instances[i] = structpb.NewStructValue(instance)
	}

	endpoint := fmt.Sprintf(
		"projects/%s/locations/%s/publishers/google/models/%s",
		e.projectID, e.location, e.modelID,
	)

	resp, err := e.client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:  endpoint,
		Instances: instances,
	})
	if err != nil {
		return nil, fmt.Errorf("vertex predict: %w", err)
	}
	if len(resp.Predictions) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d want %d", len(resp.Predictions), len(texts))
	}

	vectors := make([][]float32, len(resp.Predictions))
	for i, prediction := range resp.Predictions {
		values := prediction.GetStructValue().
			GetFields()["embeddings"].GetStructValue().
			GetFields()["values"].GetListValue().GetValues()
		if len(values) == 0 {
			return nil, fmt.Errorf("prediction %d has no embedding values", i)
		}
		vector := make([]float32, len(values))
		for j, v := range values {
			vector[j] = float32(v.GetNumberValue())
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (e *VertexEmbedder) Close() error {
	return e.client.Close()
}
