package ondemand

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestNewClientAppliesDefaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k"})
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
	assert.Equal(t, DefaultEndpointID, client.config.EndpointID)
	assert.Equal(t, DefaultTimeout, client.config.Timeout)
}

func TestQuerySendsExpectedRequest(t *testing.T) {
	var captured queryRequest
	var apiKey string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("apikey")
		assert.Equal(t, "/sessions/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"data":{"answer":"ok"}}`))
	})

	answer, err := client.Query(context.Background(), "what is policy X", "user-42")
	require.NoError(t, err)

	assert.Equal(t, "ok", answer)
	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "what is policy X", captured.Query)
	assert.Equal(t, DefaultEndpointID, captured.EndpointID)
	assert.Equal(t, "sync", captured.ResponseMode)
	assert.Equal(t, "user-42", captured.ExternalUserID)
}

func TestQueryExtractsNestedAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"answer":"nested answer"}}`))
	})

	answer, err := client.Query(context.Background(), "q", "u")
	require.NoError(t, err)
	assert.Equal(t, "nested answer", answer)
}

func TestQueryExtractsTopLevelAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"top level answer"}`))
	})

	answer, err := client.Query(context.Background(), "q", "u")
	require.NoError(t, err)
	assert.Equal(t, "top level answer", answer)
}

func TestQueryPassesThroughPlainText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a plain text answer"))
	})

	answer, err := client.Query(context.Background(), "q", "u")
	require.NoError(t, err)
	assert.Equal(t, "a plain text answer", answer)
}

func TestQueryFallsBackToRawEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	answer, err := client.Query(context.Background(), "q", "u")
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok"}`, answer)
}

func TestQuerySurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	_, err := client.Query(context.Background(), "q", "u")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Body)
}

func TestQueryHonorsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, "q", "u")
	assert.Error(t, err)
}
