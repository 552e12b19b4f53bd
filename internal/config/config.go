package config

import (
	"os"
	"time"
)

type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
	Brief     BriefConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// ProviderConfig holds one vendor's credentials and model selection.
// Endpoint is only needed to point an adapter at a non-default base URL.
type ProviderConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

type ProvidersConfig struct {
	Default        string
	RequestTimeout time.Duration
	OpenAI         ProviderConfig
	Claude         ProviderConfig
	Perplexity     ProviderConfig
	Mistral        ProviderConfig
}

type BriefConfig struct {
	RetryBackoff time.Duration
}

type StorageConfig struct {
	ClientsDir string
	OutputDir  string
}

// Load resolves configuration from the environment once at startup.
// Missing provider keys are not an error here; a fully unconfigured
// provider set surfaces later as "no provider available".
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 120*time.Second),
			IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		Providers: ProvidersConfig{
			Default:        getEnv("DEFAULT_AI_PROVIDER", "openai"),
			RequestTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 90*time.Second),
			OpenAI: ProviderConfig{
				APIKey:   getEnv("OPENAI_API_KEY", ""),
				Model:    getEnv("OPENAI_MODEL", "gpt-4o"),
				Endpoint: getEnv("OPENAI_ENDPOINT", ""),
			},
			Claude: ProviderConfig{
				APIKey:   getEnv("CLAUDE_API_KEY", ""),
				Model:    getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
				Endpoint: getEnv("CLAUDE_ENDPOINT", ""),
			},
			Perplexity: ProviderConfig{
				APIKey:   getEnv("PERPLEXITY_API_KEY", ""),
				Model:    getEnv("PERPLEXITY_MODEL", "llama-3.1-sonar-large-128k-online"),
				Endpoint: getEnv("PERPLEXITY_ENDPOINT", ""),
			},
			Mistral: ProviderConfig{
				APIKey:   getEnv("MISTRAL_API_KEY", ""),
				Model:    getEnv("MISTRAL_MODEL", "mistral-large-latest"),
				Endpoint: getEnv("MISTRAL_ENDPOINT", ""),
			},
		},
		Brief: BriefConfig{
			RetryBackoff: getEnvAsDuration("RETRY_BACKOFF", 5*time.Second),
		},
		Storage: StorageConfig{
			ClientsDir: getEnv("CLIENTS_DIR", "clients"),
			OutputDir:  getEnv("OUTPUT_DIR", "output_briefs"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
