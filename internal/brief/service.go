package brief

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"briefgen/internal/provider"
)

// Providers is the slice of the provider registry the orchestrator
// needs: availability and resolution of a request's provider choice.
type Providers interface {
	Available() []provider.ID
	Resolve(choice provider.ID) (provider.ID, provider.Adapter, error)
}

// Service drives end-to-end brief generation: validate, resolve
// provider, build prompt, call the adapter, parse the reply.
type Service struct {
	providers Providers
	backoff   time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewService creates a Service. backoff is waited before the single
// retry on a transient provider failure.
func NewService(providers Providers, backoff time.Duration) *Service {
	return &Service{
		providers: providers,
		backoff:   backoff,
		sleep:     sleepContext,
	}
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Validate rejects requests missing required input.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Topic) == "":
		return fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	case strings.TrimSpace(r.PrimaryKeyword) == "":
		return fmt.Errorf("%w: primary keyword is required", ErrInvalidRequest)
	case r.Profile == nil:
		return fmt.Errorf("%w: client profile is required", ErrInvalidRequest)
	}
	return nil
}

// CreateBrief generates one complete brief or fails with a typed error.
// A brief is never returned with fewer than all twelve sections.
func (s *Service) CreateBrief(ctx context.Context, req Request) (*GeneratedBrief, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, adapter, err := s.providers.Resolve(req.Provider)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)

	log.Info().
		Str("provider", string(id)).
		Str("client", req.Profile.Name).
		Str("topic", req.Topic).
		Msg("Generating content brief")

	raw, err := s.generate(ctx, id, adapter, prompt)
	if err != nil {
		return nil, err
	}

	b, err := Parse(raw)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			log.Error().
				Str("provider", string(id)).
				Int("missing", len(perr.Missing)).
				Msg("Model output did not match the brief schema")
		}
		return nil, err
	}

	b.Client = req.Profile.Name
	b.Site = req.Profile.Site
	b.Topic = req.Topic
	b.PrimaryKeyword = req.PrimaryKeyword
	b.SecondaryKeywords = req.SecondaryKeywords
	b.Provider = id
	b.GeneratedAt = time.Now().UTC()
	return b, nil
}

// generate performs the provider call, retrying exactly once after a
// fixed backoff for rate-limit and timeout failures only.
func (s *Service) generate(ctx context.Context, id provider.ID, adapter provider.Adapter, prompt provider.Prompt) (string, error) {
	raw, err := adapter.Generate(ctx, prompt)
	if err == nil {
		return raw, nil
	}

	var perr *provider.Error
	if !errors.As(err, &perr) || !perr.Retryable() {
		return "", err
	}

	log.Warn().
		Str("provider", string(id)).
		Str("kind", string(perr.Kind)).
		Dur("backoff", s.backoff).
		Msg("Transient provider failure, retrying once")
	if serr := s.sleep(ctx, s.backoff); serr != nil {
		// Cancelled during backoff; the transient failure stands.
		return "", err
	}

	return adapter.Generate(ctx, prompt)
}
