// Package chatapi is a minimal client for OpenAI-compatible chat-completion endpoints.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client sends single chat-completion requests.
type Client struct {
	cfg    Config
	apiKey string
	http   *http.Client
}

// NewClient constructs a new chat-completion client.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("chat model is required")
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(keyEnvName(cfg.APIKeyEnv)))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required (set api.api_key or the %s environment variable)", keyEnvName(cfg.APIKeyEnv))
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout > 0 {
		withTimeout := *httpClient
		withTimeout.Timeout = cfg.Timeout
		httpClient = &withTimeout
	}

	return &Client{
		cfg: Config{
			Endpoint: endpoint,
			Model:    model,
			Timeout:  cfg.Timeout,
		},
		apiKey: apiKey,
		http:   httpClient,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint
}

// Complete sends one chat-completion request. There are no retries.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.cfg.Model
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return ChatResponse{}, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	log.Debug().
		Str("endpoint", c.cfg.Endpoint).
		Str("model", req.Model).
		Msg("sending chat completion request")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("post chat completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("read chat response: %w", err)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(body)).
		Msg("chat completion response received")

	if resp.StatusCode != http.StatusOK {
		return ChatResponse{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out ChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}
	if _, err := out.Content(); err != nil {
		return ChatResponse{}, err
	}
	return out, nil
}

func keyEnvName(env string) string {
	if env = strings.TrimSpace(env); env != "" {
		return env
	}
	return defaultAPIKeyEnv
}
