package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

// modelCooldown is how long a model that just failed with a transient
// provider status is skipped by the candidate walk.
const modelCooldown = 2 * time.Minute

var (
	ErrNoAPIKey      = errors.New("provider API key is not configured")
	ErrNoModels      = errors.New("no candidate models configured")
	ErrEmptyResponse = errors.New("provider returned empty content")
)

// CooldownStore marks models that recently failed so the candidate
// walk can skip them for a short window. Implementations must be safe
// for concurrent use.
type CooldownStore interface {
	InCooldown(ctx context.Context, model string) bool
	MarkCooldown(ctx context.Context, model string, d time.Duration)
}

// Client talks to an OpenAI-compatible chat-completion provider. It
// holds configuration only, so a single instance is constructed at
// process start and shared read-only across concurrent requests.
type Client struct {
	BaseURL     string
	APIKey      string
	Models      []string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
	Cooldowns   CooldownStore
}

// NewClient builds a provider client with a bounded request timeout.
func NewClient(baseURL, apiKey string, models []string, temperature float64, maxTokens int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		APIKey:      apiKey,
		Models:      models,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		HTTPClient:  &http.Client{Timeout: timeout},
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
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// generatedTextEnvelope covers providers that answer with a bare
// generated_text array instead of the chat-completion shape.
type generatedTextEnvelope []struct {
	GeneratedText string `json:"generated_text"`
}

// Complete sends one system/user exchange and returns the model's raw
// text reply. It walks the ordered candidate model list, treating a
// transient failure of one model as reason to try the next; the
// provider endpoint itself is attempted at most once per model.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}
	if len(c.Models) == 0 {
		return "", ErrNoModels
	}

	var lastErr error
	for _, m := range c.Models {
		if c.Cooldowns != nil && c.Cooldowns.InCooldown(ctx, m) {
			log.Printf("[model-client] Skipping %s: in cooldown", m)
			continue
		}

		content, err := c.complete(ctx, m, system, user)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if transient(err) {
			if c.Cooldowns != nil {
				c.Cooldowns.MarkCooldown(ctx, m, modelCooldown)
			}
			log.Printf("[model-client] Model %s unavailable (%v), trying next candidate", m, err)
			continue
		}
		return "", err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("all candidate models in cooldown: %w", ErrNoModels)
	}
	return "", lastErr
}

// transientError marks provider statuses worth retrying on the next
// candidate model (rate limits, model loading, upstream outages).
type transientError struct {
	status int
	body   string
}

func (e *transientError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.status, e.body)
}

func transient(err error) bool {
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	return errors.Is(err, ErrEmptyResponse)
}

func (c *Client) complete(ctx context.Context, model, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Stream:      false,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("[model-client] Error closing provider response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to envelope parsing
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusNotFound:
		return "", &transientError{status: resp.StatusCode, body: truncate(string(body), 200)}
	default:
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return "", ErrEmptyResponse
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err == nil {
		if response.Error != nil {
			return "", &transientError{status: response.Error.Code, body: response.Error.Message}
		}
		if len(response.Choices) > 0 {
			content := response.Choices[0].Message.Content
			if content == "" {
				content = response.Choices[0].Text
			}
			if content != "" {
				return content, nil
			}
		}
	}

	// Fallback envelope: a bare generated_text array.
	var generated generatedTextEnvelope
	if err := json.Unmarshal(body, &generated); err == nil && len(generated) > 0 && generated[0].GeneratedText != "" {
		return generated[0].GeneratedText, nil
	}

	return "", ErrEmptyResponse
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
