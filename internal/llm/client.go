// Package llm talks to an OpenRouter-compatible chat completions API.
// The transport enforces nothing about the response content beyond
// extracting the completion text; all schema enforcement happens in the
// planner package.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"fitai/workout-planner/internal/config"
)

// ErrUnavailable marks upstream failures (unreachable host, timeout,
// 5xx, rate limiting). These are the only retryable failures in the
// generation pipeline, and retrying is the caller's business.
var ErrUnavailable = errors.New("language model service unavailable")

// Client produces a raw completion for a system + user instruction pair.
type Client interface {
	Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error)
}

// OpenRouterClient implements Client against the OpenRouter chat
// completions endpoint (or anything API-compatible with it).
type OpenRouterClient struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewOpenRouterClient creates a client with the configured model and a
// bounded request timeout.
func NewOpenRouterClient(cfg config.LLMConfig) *OpenRouterClient {
	return &OpenRouterClient{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the instruction pair and returns the model's text
// verbatim. Low randomness and the token cap are fixed per request so
// the output stays parseable.
func (c *OpenRouterClient) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userInstruction},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection failures and client-side timeouts are both
		// upstream-unavailable conditions.
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion request failed: status %d body %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
