package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigs(keys map[ID]string) []Config {
	configs := make([]Config, 0, len(All))
	for _, id := range All {
		configs = append(configs, Config{ID: id, APIKey: keys[id], Model: "test-model"})
	}
	return configs
}

func TestNewRegistry_OnlyKeyedProvidersAvailable(t *testing.T) {
	r, err := NewRegistry(testConfigs(map[ID]string{
		Claude:  "sk-claude",
		Mistral: "sk-mistral",
	}), "", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, []ID{Claude, Mistral}, r.Available())
}

func TestNewRegistry_NoKeys(t *testing.T) {
	r, err := NewRegistry(testConfigs(nil), "", time.Minute)
	require.NoError(t, err)

	assert.Empty(t, r.Available())

	_, err = r.Default()
	assert.ErrorIs(t, err, ErrNoProviderAvailable)

	_, _, err = r.Resolve("")
	assert.ErrorIs(t, err, ErrNoProviderAvailable)
}

func TestNewRegistry_RejectsUnknownProvider(t *testing.T) {
	_, err := NewRegistry([]Config{{ID: "gemini", APIKey: "sk-x"}}, "", time.Minute)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestRegistry_DefaultHonouredWhenAvailable(t *testing.T) {
	r, err := NewRegistry(testConfigs(map[ID]string{
		OpenAI: "sk-openai",
		Claude: "sk-claude",
	}), Claude, time.Minute)
	require.NoError(t, err)

	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, Claude, def)
}

func TestRegistry_DefaultFallsBackToFirstAvailable(t *testing.T) {
	r, err := NewRegistry(testConfigs(map[ID]string{
		Perplexity: "sk-pplx",
	}), OpenAI, time.Minute)
	require.NoError(t, err)

	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, Perplexity, def)
}

func TestRegistry_Adapter(t *testing.T) {
	r, err := NewRegistry(testConfigs(map[ID]string{
		OpenAI: "sk-openai",
	}), "", time.Minute)
	require.NoError(t, err)

	a, err := r.Adapter(OpenAI)
	require.NoError(t, err)
	assert.NotNil(t, a)

	_, err = r.Adapter(Claude)
	assert.ErrorIs(t, err, ErrNoProviderAvailable)

	_, err = r.Adapter("gemini")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestRegistry_Resolve(t *testing.T) {
	r, err := NewRegistry(testConfigs(map[ID]string{
		OpenAI:  "sk-openai",
		Mistral: "sk-mistral",
	}), Mistral, time.Minute)
	require.NoError(t, err)

	id, a, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Mistral, id)
	assert.NotNil(t, a)

	id, _, err = r.Resolve(OpenAI)
	require.NoError(t, err)
	assert.Equal(t, OpenAI, id)

	_, _, err = r.Resolve(Claude)
	assert.ErrorIs(t, err, ErrNoProviderAvailable)

	_, _, err = r.Resolve("gemini")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestErrorRetryable(t *testing.T) {
	for kind, want := range map[ErrorKind]bool{
		KindRateLimit: true,
		KindTimeout:   true,
		KindAuth:      false,
		KindMalformed: false,
		KindUnknown:   false,
	} {
		err := &Error{Provider: OpenAI, Kind: kind}
		assert.Equal(t, want, err.Retryable(), "kind %s", kind)
	}
}
