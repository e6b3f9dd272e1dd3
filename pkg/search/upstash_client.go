package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type (
	// IndexClient is the transport to the external search service.
	IndexClient interface {
		Upsert(ctx context.Context, documents []Document) error
		Delete(ctx context.Context, documentIDs []string) error
		Search(ctx context.Context, query string, limit int) ([]Hit, error)
	}

	Hit struct {
		ID    string  `json:"id"`
		Score float64 `json:"score"`
	}

	upstashClient struct {
		baseURL    string
		token      string
		index      string
		httpClient *http.Client
	}
)

// NewUpstashClient builds a REST client for the Upstash Search service.
// The index name defaults to "recipes".
func NewUpstashClient(baseURL, token, index string) IndexClient {
	if index == "" {
		index = "recipes"
	}
	return &upstashClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		index:      index,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *upstashClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upstash search: %s - %s", resp.Status, string(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *upstashClient) Upsert(ctx context.Context, documents []Document) error {
	payload := map[string]any{
		"index":     c.index,
		"documents": documents,
	}
	return c.post(ctx, "/upsert", payload, nil)
}

func (c *upstashClient) Delete(ctx context.Context, documentIDs []string) error {
	payload := map[string]any{
		"index": c.index,
		"ids":   documentIDs,
	}
	return c.post(ctx, "/delete", payload, nil)
}

func (c *upstashClient) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	payload := map[string]any{
		"index": c.index,
		"query": query,
		"limit": limit,
	}
	var out struct {
		Scores []Hit `json:"scores"`
	}
	if err := c.post(ctx, "/search", payload, &out); err != nil {
		return nil, err
	}
	return out.Scores, nil
}
