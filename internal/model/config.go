package model

import "time"

// Config holds the complete runtime configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Data        DataConfig        `yaml:"data" mapstructure:"data"`
	Embedding   EmbeddingConfig   `yaml:"embedding" mapstructure:"embedding"`
	APIs        APIConfig         `yaml:"apis" mapstructure:"apis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Notify      NotifyConfig      `yaml:"notify" mapstructure:"notify"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig configures outbound HTTP behavior shared by all clients.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig configures API response caching.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// DataConfig configures knowledge-base storage.
type DataConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// EmbeddingConfig configures the document search embedder.
type EmbeddingConfig struct {
	// Provider is "openai" or "local". The local embedder is a
	// deterministic token-hashing embedder that needs no network.
	Provider   string `yaml:"provider" mapstructure:"provider"`
	Model      string `yaml:"model" mapstructure:"model"`
	APIKey     string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL    string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Dimensions int    `yaml:"dimensions" mapstructure:"dimensions"`
}

// APIConfig configures the external regulatory API clients.
type APIConfig struct {
	FederalRegisterBaseURL string `yaml:"federal_register_base_url" mapstructure:"federal_register_base_url"`
	CourtListenerBaseURL   string `yaml:"courtlistener_base_url" mapstructure:"courtlistener_base_url"`
	CourtListenerToken     string `yaml:"courtlistener_token,omitempty" mapstructure:"courtlistener_token"`
}

// ConcurrencyConfig configures worker counts for batch operations.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig configures per-domain outbound rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// NotifyConfig configures report notification delivery.
type NotifyConfig struct {
	SlackWebhookURL string `yaml:"slack_webhook_url,omitempty" mapstructure:"slack_webhook_url"`
}

// OutputConfig configures report output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "PolicyNavigator/1.0 (+https://github.com/ranacirrusgo/policynav)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // resolved to ~/.policynav/cache at startup
			TTL:     6 * time.Hour,
		},
		Data: DataConfig{
			Dir: "./data",
		},
		Embedding: EmbeddingConfig{
			Provider:   "local",
			Model:      "text-embedding-3-small",
			Dimensions: 256,
		},
		APIs: APIConfig{
			FederalRegisterBaseURL: "https://www.federalregister.gov/api/v1",
			CourtListenerBaseURL:   "https://www.courtlistener.com/api/rest/v3",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
	}
}
