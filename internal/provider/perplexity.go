package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// perplexityEndpoint is the default chat completions URL. Perplexity has
// no official Go SDK, so the adapter speaks the wire format directly.
const perplexityEndpoint = "https://api.perplexity.ai/chat/completions"

// PerplexityAdapter calls the Perplexity chat completions API.
type PerplexityAdapter struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewPerplexity creates an adapter for the Perplexity API.
func NewPerplexity(cfg Config, timeout time.Duration) *PerplexityAdapter {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = perplexityEndpoint
	}
	return &PerplexityAdapter{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
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

func (a *PerplexityAdapter) Generate(ctx context.Context, prompt Prompt) (string, error) {
	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &Error{Provider: Perplexity, Kind: KindUnknown, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: Perplexity, Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		kind := KindUnknown
		if isTimeout(err) {
			kind = KindTimeout
		}
		return "", &Error{Provider: Perplexity, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &Error{
			Provider: Perplexity,
			Kind:     kindFromStatus(resp.StatusCode),
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status: %s", snippet),
		}
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &Error{Provider: Perplexity, Kind: KindMalformed, Status: resp.StatusCode, Err: err}
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", &Error{Provider: Perplexity, Kind: KindMalformed, Status: resp.StatusCode, Err: errors.New("empty completion")}
	}
	return decoded.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
