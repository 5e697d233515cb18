package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Zero(t, req.Temperature)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, `lugar="Euskal Herria"`)

		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"{\"city\":\"Bilbao\"}"}}]}`)
	}))
	defer srv.Close()

	client := NewLLMClientWithBaseURL("key", "", srv.URL)
	city, err := client.NormalizeLocation(context.Background(), "Euskal Herria")
	require.NoError(t, err)
	assert.Equal(t, "Bilbao", city)
}

func TestNormalizeLocationNonJSONAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Bilbao, claro"}}]}`)
	}))
	defer srv.Close()

	client := NewLLMClientWithBaseURL("key", "", srv.URL)
	_, err := client.NormalizeLocation(context.Background(), "Euskal Herria")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict JSON")
}

func TestNormalizeLocationAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewLLMClientWithBaseURL("key", "", srv.URL)
	_, err := client.NormalizeLocation(context.Background(), "Euskal Herria")
	require.Error(t, err)
}

func TestNormalizeLocationUnconfigured(t *testing.T) {
	client := NewLLMClient("", "")
	_, err := client.NormalizeLocation(context.Background(), "Euskal Herria")
	assert.Error(t, err)
}
