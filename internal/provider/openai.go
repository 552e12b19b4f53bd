package provider

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// mistralEndpoint is the OpenAI-compatible chat completions base URL of
// the Mistral platform.
const mistralEndpoint = "https://api.mistral.ai/v1"

// OpenAIAdapter calls any OpenAI-compatible chat completions API via the
// official openai-go SDK. It serves both the OpenAI provider and, with a
// base URL override, the Mistral provider.
type OpenAIAdapter struct {
	id      ID
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI creates an adapter for the OpenAI API.
func NewOpenAI(cfg Config, timeout time.Duration) *OpenAIAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// One network call per Generate; the orchestrator owns retries.
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	return &OpenAIAdapter{
		id:      cfg.ID,
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// NewMistral creates an adapter for the Mistral API, which speaks the
// OpenAI chat completions wire format.
func NewMistral(cfg Config, timeout time.Duration) *OpenAIAdapter {
	if cfg.Endpoint == "" {
		cfg.Endpoint = mistralEndpoint
	}
	return NewOpenAI(cfg, timeout)
}

func (a *OpenAIAdapter) Generate(ctx context.Context, prompt Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", a.wrap(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Provider: a.id, Kind: KindMalformed, Err: errors.New("empty completion")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (a *OpenAIAdapter) wrap(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &Error{Provider: a.id, Kind: kindFromStatus(apierr.StatusCode), Status: apierr.StatusCode, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Provider: a.id, Kind: KindTimeout, Err: err}
	}
	return &Error{Provider: a.id, Kind: KindUnknown, Err: err}
}
