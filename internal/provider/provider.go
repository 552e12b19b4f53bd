package provider

import (
	"context"
	"fmt"
	"net/http"
)

// ID identifies a supported AI provider.
type ID string

const (
	OpenAI     ID = "openai"
	Claude     ID = "claude"
	Perplexity ID = "perplexity"
	Mistral    ID = "mistral"
)

// All lists the supported providers in their canonical order.
var All = []ID{OpenAI, Claude, Perplexity, Mistral}

// Config holds the per-provider settings resolved at startup.
type Config struct {
	ID       ID
	APIKey   string
	Model    string
	Endpoint string
}

// Available reports whether this provider can be used.
func (c Config) Available() bool {
	return c.APIKey != ""
}

// Prompt is the uniform input every adapter accepts.
type Prompt struct {
	System string
	User   string
}

// Adapter wraps one vendor's API behind a uniform call signature.
// Implementations perform exactly one network request per call; retry
// policy belongs to the caller.
type Adapter interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// Shared generation settings, matching the defaults the brief prompts
// were tuned against.
const (
	temperature = 0.7
	maxTokens   = 4096
)

// ErrorKind classifies provider failures.
type ErrorKind string

const (
	KindAuth      ErrorKind = "AUTH"
	KindRateLimit ErrorKind = "RATE_LIMIT"
	KindTimeout   ErrorKind = "TIMEOUT"
	KindMalformed ErrorKind = "MALFORMED_RESPONSE"
	KindUnknown   ErrorKind = "UNKNOWN"
)

// Error is the only error type adapters surface. Status is the HTTP
// status of the vendor response when one was received.
type Error struct {
	Provider ID
	Kind     ErrorKind
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether a single retry is worth attempting.
func (e *Error) Retryable() bool {
	return e.Kind == KindRateLimit || e.Kind == KindTimeout
}

func kindFromStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusTooManyRequests:
		return KindRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindUnknown
	}
}
