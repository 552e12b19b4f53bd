package provider

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoProviderAvailable means no provider has an API key configured.
	ErrNoProviderAvailable = errors.New("no AI provider available")
	// ErrUnknownProvider means the requested provider id is not a supported provider.
	ErrUnknownProvider = errors.New("unknown AI provider")
)

// Registry holds the adapters for every provider with a configured API
// key. It is built once at startup and never mutated afterwards.
type Registry struct {
	adapters map[ID]Adapter
	def      ID
}

// NewRegistry builds adapters for every config with a non-empty API key.
// defaultID may be empty; it is only honoured when that provider is
// available. timeout bounds each outbound request.
func NewRegistry(configs []Config, defaultID ID, timeout time.Duration) (*Registry, error) {
	adapters := make(map[ID]Adapter)
	for _, cfg := range configs {
		if !cfg.Available() {
			continue
		}
		switch cfg.ID {
		case OpenAI:
			adapters[cfg.ID] = NewOpenAI(cfg, timeout)
		case Mistral:
			adapters[cfg.ID] = NewMistral(cfg, timeout)
		case Claude:
			adapters[cfg.ID] = NewClaude(cfg, timeout)
		case Perplexity:
			adapters[cfg.ID] = NewPerplexity(cfg, timeout)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.ID)
		}
	}
	return &Registry{adapters: adapters, def: defaultID}, nil
}

// Available returns the configured providers in canonical order.
func (r *Registry) Available() []ID {
	var ids []ID
	for _, id := range All {
		if _, ok := r.adapters[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Default returns the configured default provider if it is available,
// else the first available provider.
func (r *Registry) Default() (ID, error) {
	if r.def != "" {
		if _, ok := r.adapters[r.def]; ok {
			return r.def, nil
		}
	}
	for _, id := range All {
		if _, ok := r.adapters[id]; ok {
			return id, nil
		}
	}
	return "", ErrNoProviderAvailable
}

// Adapter returns the adapter registered for id.
func (r *Registry) Adapter(id ID) (Adapter, error) {
	if !known(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	a, ok := r.adapters[id]
	if !ok {
		return nil, fmt.Errorf("provider %s has no API key configured: %w", id, ErrNoProviderAvailable)
	}
	return a, nil
}

// Resolve picks the provider for a request: the explicit choice when
// given, otherwise the default.
func (r *Registry) Resolve(choice ID) (ID, Adapter, error) {
	if choice == "" {
		def, err := r.Default()
		if err != nil {
			return "", nil, err
		}
		choice = def
	}
	a, err := r.Adapter(choice)
	if err != nil {
		return "", nil, err
	}
	return choice, a, nil
}

func known(id ID) bool {
	for _, k := range All {
		if k == id {
			return true
		}
	}
	return false
}
