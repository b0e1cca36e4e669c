package llmHandlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// VertexAnthropicClient implements Client for Claude models hosted on
// Vertex AI, using the rawPredict endpoint with service-account credentials.
type VertexAnthropicClient struct {
	httpClient *http.Client
	projectID  string
	location   string
	modelID    string

	Temperature float64
	MaxTokens   int
}

type VertexAnthropicConfig struct {
	ProjectID      string
	Location       string // e.g. "us-east5"
	ModelID        string // e.g. "claude-sonnet-4-5@20250929"
	CredentialsB64 string // base64-encoded service account JSON

	Temperature float64
	MaxTokens   int
}

func NewVertexAnthropicClient(ctx context.Context, cfg VertexAnthropicConfig) (*VertexAnthropicClient, error) {
	if cfg.CredentialsB64 == "" {
		return nil, fmt.Errorf("service account credentials not set")
	}
	saJSON, err := base64.StdEncoding.DecodeString(cfg.CredentialsB64)
	if err != nil {
		return nil, fmt.Errorf("decode sa json: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, saJSON, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, fmt.Errorf("CredentialsFromJSON: %w", err)
	}

	return &VertexAnthropicClient{
		httpClient:  oauth2.NewClient(ctx, creds.TokenSource),
		projectID:   cfg.ProjectID,
		location:    cfg.Location,
		modelID:     cfg.ModelID,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, nil
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
}

func (c *VertexAnthropicClient) Chat(ctx context.Context, systemMessage string, messages []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	url := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/anthropic/models/%s:rawPredict",
		c.location, c.projectID, c.location, c.modelID,
	)

	msgs := make([]map[string]interface{}, len(messages))
	for i, m := range messages {
		msgs[i] = map[string]interface{}{
			"role":    m.Role,
			"content": m.Content,
		}
	}

	body := map[string]interface{}{
		"anthropic_version": "vertex-2023-10-16",
		"max_tokens":        c.MaxTokens,
		"temperature":       c.Temperature,
		"messages":          msgs,
	}
	if systemMessage != "" {
		body["system"] = systemMessage
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vertex rawPredict: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vertex rawPredict status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	texts := make([]string, 0, len(parsed.Content))
	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			texts = append(texts, block.Text)
		}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("claude returned no text content")
	}

	return strings.Join(texts, "\n\n"), nil
}
