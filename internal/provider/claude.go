package provider

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeAdapter calls the Anthropic Messages API.
type ClaudeAdapter struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewClaude creates an adapter for the Anthropic API.
func NewClaude(cfg Config, timeout time.Duration) *ClaudeAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	return &ClaudeAdapter{
		client:  anthropic.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
	}
}

func (a *ClaudeAdapter) Generate(ctx context.Context, prompt Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: prompt.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
	})
	if err != nil {
		return "", a.wrap(err)
	}
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", &Error{Provider: Claude, Kind: KindMalformed, Err: errors.New("no text block in response")}
}

func (a *ClaudeAdapter) wrap(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &Error{Provider: Claude, Kind: kindFromStatus(apierr.StatusCode), Status: apierr.StatusCode, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Provider: Claude, Kind: KindTimeout, Err: err}
	}
	return &Error{Provider: Claude, Kind: KindUnknown, Err: err}
}
