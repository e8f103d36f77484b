// Package ondemand wraps the on-demand.io chat completion endpoint used for
// policy simulations. The service accepts a combined prompt string plus an
// endpoint identifier and answers synchronously.
package ondemand

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the chat API root.
	DefaultBaseURL = "https://api.on-demand.io/chat/v1"
	// DefaultEndpointID selects the default hosted model.
	DefaultEndpointID = "predefined-openai-gpt4.1-nano"
	// DefaultTimeout bounds a single synchronous query.
	DefaultTimeout = 60 * time.Second
)

// Config carries the credentials and endpoint selection for the client.
// Injected explicitly so tests can substitute a local server; the client
// never reads the process environment.
type Config struct {
	APIKey     string
	BaseURL    string
	EndpointID string
	Timeout    time.Duration
}

// APIError is a non-success response from the service. The status code and
// body are preserved so callers can surface upstream detail.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("on-demand API error (%d): %s", e.StatusCode, e.Body)
}

// Client issues synchronous queries against the chat endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient validates the configuration, applies defaults, and returns a
// ready client.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for on-demand client")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.EndpointID == "" {
		config.EndpointID = DefaultEndpointID
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// queryRequest is the wire shape of a synchronous chat query.
type queryRequest struct {
	Query          string `json:"query"`
	EndpointID     string `json:"endpointId"`
	ResponseMode   string `json:"responseMode"`
	ExternalUserID string `json:"externalUserId,omitempty"`
}

// queryResponse is the envelope the service answers with. The answer may sit
// under the data key or at the top level depending on the endpoint.
type queryResponse struct {
	Data struct {
		Answer string `json:"answer"`
	} `json:"data"`
	Answer string `json:"answer"`
}

// Query sends a combined prompt and returns the plain answer text.
// externalUserID is an opaque caller/session identifier passed through to
// the service. Exactly one outbound call is made; there is no retry.
func (c *Client) Query(ctx context.Context, query string, externalUserID string) (string, error) {
	body, err := json.Marshal(queryRequest{
		Query:          query,
		EndpointID:     c.config.EndpointID,
		ResponseMode:   "sync",
		ExternalUserID: externalUserID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/sessions/query", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query on-demand API: %w", err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(responseData)}
	}

	// The endpoint may answer with a JSON envelope or plain text.
	var envelope queryResponse
	if err := json.Unmarshal(responseData, &envelope); err != nil {
		return string(responseData), nil
	}
	if envelope.Data.Answer != "" {
		return envelope.Data.Answer, nil
	}
	if envelope.Answer != "" {
		return envelope.Answer, nil
	}
	return string(responseData), nil
}
