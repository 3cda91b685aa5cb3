package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/pagesum"
)

// Supported summarization providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the environment configuration. The credential is always
// supplied from outside the binary.
type Config struct {
	Provider     string `env:"PAGESUM_PROVIDER" envDefault:"openai"`
	APIKey       string `env:"PAGESUM_API_KEY"`
	BaseURL      string `env:"PAGESUM_BASE_URL" envDefault:"https://api.venice.ai/api/v1/"`
	Model        string `env:"PAGESUM_MODEL"    envDefault:"nous-hermes-8b"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"     envDefault:"gemini-2.5-flash"`
}

// LoadConfig parses the configuration from environ, or from the process
// environment when environ is nil, and validates it.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, pagesum.Errorf(pagesum.EINVALID, "invalid configuration: %v", err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the selected provider lacks its credential.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return pagesum.Errorf(pagesum.EINVALID, "PAGESUM_API_KEY required")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return pagesum.Errorf(pagesum.EINVALID, "GEMINI_API_KEY required")
		}
	default:
		return pagesum.Errorf(pagesum.EINVALID, "unknown provider %q (available: openai, gemini)", c.Provider)
	}
	return nil
}
