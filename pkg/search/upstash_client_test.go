package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstashClientSearch(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"scores": []map[string]any{
				{"id": "recipe:5", "score": 0.93},
				{"id": "recipe:2", "score": 0.81},
			},
		})
	}))
	defer server.Close()

	client := NewUpstashClient(server.URL, "secret-token", "recipes")
	hits, err := client.Search(context.Background(), "rendang", 10)
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "recipes", gotPayload["index"])
	assert.Equal(t, "rendang", gotPayload["query"])

	require.Len(t, hits, 2)
	assert.Equal(t, "recipe:5", hits[0].ID)
	assert.InDelta(t, 0.93, hits[0].Score, 0.001)
}

func TestUpstashClientUpsertAndDelete(t *testing.T) {
	var paths []string
	var payloads []map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payloads = append(payloads, payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewUpstashClient(server.URL+"/", "token", "")

	err := client.Upsert(context.Background(), []Document{{ID: "recipe:1"}})
	require.NoError(t, err)
	err = client.Delete(context.Background(), []string{"recipe:1"})
	require.NoError(t, err)

	require.Equal(t, []string{"/upsert", "/delete"}, paths)
	// Index name defaults when not configured.
	assert.Equal(t, "recipes", payloads[0]["index"])
	assert.Equal(t, []any{"recipe:1"}, payloads[1]["ids"])
}

func TestUpstashClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewUpstashClient(server.URL, "bad-token", "recipes")
	_, err := client.Search(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
