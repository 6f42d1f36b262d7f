// File: pkg/openrouter/client.go

// Package openrouter implements the single outbound call to the OpenRouter
// chat-completion API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the OpenRouter chat-completion URL.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// DefaultTimeout bounds the whole request; large prompts can take a while to
// complete but the process must not hang forever on a dead connection.
const DefaultTimeout = 120 * time.Second

// maxResponseBytes caps how much of the response body is read.
const maxResponseBytes = 4 << 20

// Client issues chat-completion requests. A failed or malformed exchange is
// reported through the error return, never as an empty success.
type Client struct {
	APIKey   string
	Model    string
	Endpoint string
	Referer  string // optional HTTP-Referer header value
	Title    string // optional X-Title header value
	HTTP     *http.Client
	logger   *zap.Logger
}

// NewClient creates an OpenRouter client with the default endpoint and
// timeout.
func NewClient(apiKey, model string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		APIKey:   apiKey,
		Model:    model,
		Endpoint: DefaultEndpoint,
		HTTP:     &http.Client{Timeout: DefaultTimeout},
		logger:   logger,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// RequestAnalysis sends the prompt as a single user message and returns the
// first completion's text. One request, no retry, no streaming.
func (c *Client) RequestAnalysis(ctx context.Context, promptText string) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("missing OpenRouter API key")
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.Model,
		Messages: []chatMessage{{Role: "user", Content: promptText}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.Referer != "" {
		req.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.Title != "" {
		req.Header.Set("X-Title", c.Title)
	}

	c.logger.Debug("Sending analysis request",
		zap.String("endpoint", c.Endpoint),
		zap.String("model", c.Model),
		zap.Int("promptBytes", len(promptText)))

	started := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("openrouter http %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}

	c.logger.Debug("Received analysis response",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("contentBytes", len(parsed.Choices[0].Message.Content)))

	return parsed.Choices[0].Message.Content, nil
}
