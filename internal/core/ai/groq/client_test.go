package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-finder/internal/core/ai/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	var got provider.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "llama-3.1-8b-instant",
			"choices": [{"message": {"role": "assistant", "content": "{\"recipes\": []}"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	c := NewClient(provider.Config{APIKey: "test-key", BaseURL: srv.URL + "/", MaxTokens: 512})
	resp, err := c.Generate(context.Background(), &provider.Request{
		Messages:       []provider.Message{{Role: "user", Content: "hi"}},
		Temperature:    0.1,
		ResponseFormat: provider.JSONObject,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"recipes": []}`, resp.Content)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 512, got.MaxTokens)
	assert.InDelta(t, 0.1, got.Temperature, 1e-9)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid API Key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewClient(provider.Config{APIKey: "bad", BaseURL: srv.URL})
	_, err := c.Generate(context.Background(), &provider.Request{Messages: []provider.Message{{Role: "user", Content: "hi"}}})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API Key", apiErr.Message)
}

func TestClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(provider.Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Generate(context.Background(), &provider.Request{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(provider.Config{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	assert.Equal(t, 50*time.Millisecond, c.GetTimeout())

	_, err := c.Generate(context.Background(), &provider.Request{})
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(provider.Config{})
	assert.Equal(t, DefaultModel, c.GetModel())
	assert.Equal(t, defaultTimeout, c.GetTimeout())
	assert.NoError(t, c.Close())
}
