package brief

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefgen/internal/provider"
)

// stubAdapter returns queued results in order and counts calls.
type stubAdapter struct {
	replies []string
	errs    []error
	calls   int
	onCall  func()
}

func (a *stubAdapter) Generate(ctx context.Context, prompt provider.Prompt) (string, error) {
	i := a.calls
	a.calls++
	if a.onCall != nil {
		a.onCall()
	}
	var reply string
	var err error
	if i < len(a.replies) {
		reply = a.replies[i]
	}
	if i < len(a.errs) {
		err = a.errs[i]
	}
	return reply, err
}

type stubProviders struct {
	id      provider.ID
	adapter provider.Adapter
	err     error
}

func (p *stubProviders) Available() []provider.ID {
	if p.adapter == nil {
		return nil
	}
	return []provider.ID{p.id}
}

func (p *stubProviders) Resolve(choice provider.ID) (provider.ID, provider.Adapter, error) {
	if p.err != nil {
		return "", nil, p.err
	}
	return p.id, p.adapter, nil
}

func newTestService(providers Providers) *Service {
	s := NewService(providers, 5*time.Second)
	s.sleep = func(context.Context, time.Duration) error { return nil }
	return s
}

func TestCreateBrief_ValidationErrors(t *testing.T) {
	adapter := &stubAdapter{}
	svc := newTestService(&stubProviders{id: provider.OpenAI, adapter: adapter})

	for name, mutate := range map[string]func(*Request){
		"missing topic":           func(r *Request) { r.Topic = "  " },
		"missing primary keyword": func(r *Request) { r.PrimaryKeyword = "" },
		"missing profile":         func(r *Request) { r.Profile = nil },
	} {
		t.Run(name, func(t *testing.T) {
			req := surveyRequest()
			mutate(&req)

			_, err := svc.CreateBrief(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
	assert.Zero(t, adapter.calls, "invalid requests must not reach the provider")
}

func TestCreateBrief_NoProviderAvailable(t *testing.T) {
	adapter := &stubAdapter{}
	svc := newTestService(&stubProviders{err: provider.ErrNoProviderAvailable})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())
	assert.ErrorIs(t, err, provider.ErrNoProviderAvailable)
	assert.Zero(t, adapter.calls)
}

func TestCreateBrief_Success(t *testing.T) {
	adapter := &stubAdapter{replies: []string{wellFormedReply}}
	svc := newTestService(&stubProviders{id: provider.Mistral, adapter: adapter})

	b, err := svc.CreateBrief(context.Background(), surveyRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, adapter.calls)

	assert.Equal(t, "Apex Surveys", b.Client)
	assert.Equal(t, "Measured Building Surveys", b.Topic)
	assert.Equal(t, "measured building survey", b.PrimaryKeyword)
	assert.Equal(t, provider.Mistral, b.Provider)
	assert.False(t, b.GeneratedAt.IsZero())
	assert.Len(t, b.Sections, 12)
	assert.Contains(t, b.Sections[SectionRequirements].Body, "800-1200 words")
}

func TestCreateBrief_RetriesOnceOnTimeout(t *testing.T) {
	timeout := &provider.Error{Provider: provider.OpenAI, Kind: provider.KindTimeout}
	adapter := &stubAdapter{
		replies: []string{"", wellFormedReply},
		errs:    []error{timeout, nil},
	}
	var slept []time.Duration
	svc := NewService(&stubProviders{id: provider.OpenAI, adapter: adapter}, 5*time.Second)
	svc.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	b, err := svc.CreateBrief(context.Background(), surveyRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, adapter.calls)
	assert.Equal(t, []time.Duration{5 * time.Second}, slept)
	assert.Len(t, b.Sections, 12)
}

func TestCreateBrief_RetriesOnceOnRateLimit(t *testing.T) {
	rateLimit := &provider.Error{Provider: provider.Claude, Kind: provider.KindRateLimit, Status: 429}
	adapter := &stubAdapter{
		replies: []string{"", wellFormedReply},
		errs:    []error{rateLimit, nil},
	}
	svc := newTestService(&stubProviders{id: provider.Claude, adapter: adapter})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, adapter.calls)
}

func TestCreateBrief_CancelledDuringBackoffStopsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timeout := &provider.Error{Provider: provider.OpenAI, Kind: provider.KindTimeout}
	adapter := &stubAdapter{errs: []error{timeout, timeout}}
	adapter.onCall = cancel

	// Real backoff wait; cancellation must cut it short.
	svc := NewService(&stubProviders{id: provider.OpenAI, adapter: adapter}, time.Minute)

	start := time.Now()
	_, err := svc.CreateBrief(ctx, surveyRequest())

	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, provider.KindTimeout, perr.Kind)
	assert.Equal(t, 1, adapter.calls, "no retry after cancellation")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestCreateBrief_SecondFailurePropagates(t *testing.T) {
	timeout := &provider.Error{Provider: provider.OpenAI, Kind: provider.KindTimeout}
	adapter := &stubAdapter{errs: []error{timeout, timeout}}
	svc := newTestService(&stubProviders{id: provider.OpenAI, adapter: adapter})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())

	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, provider.KindTimeout, perr.Kind)
	assert.Equal(t, 2, adapter.calls, "exactly one retry")
}

func TestCreateBrief_AuthFailureNeverRetried(t *testing.T) {
	auth := &provider.Error{Provider: provider.Perplexity, Kind: provider.KindAuth, Status: 401}
	adapter := &stubAdapter{errs: []error{auth}}
	svc := newTestService(&stubProviders{id: provider.Perplexity, adapter: adapter})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())

	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, provider.KindAuth, perr.Kind)
	assert.Equal(t, 1, adapter.calls)
}

func TestCreateBrief_MalformedReplyIsParseError(t *testing.T) {
	adapter := &stubAdapter{replies: []string{"The model ignored the format entirely."}}
	svc := newTestService(&stubProviders{id: provider.OpenAI, adapter: adapter})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Len(t, perr.Missing, 12)
	assert.Equal(t, 1, adapter.calls, "parse failures are not retried")
}

func TestCreateBrief_NonProviderErrorNotRetried(t *testing.T) {
	adapter := &stubAdapter{errs: []error{errors.New("wire snapped")}}
	svc := newTestService(&stubProviders{id: provider.OpenAI, adapter: adapter})

	_, err := svc.CreateBrief(context.Background(), surveyRequest())
	require.Error(t, err)
	assert.Equal(t, 1, adapter.calls)
}
