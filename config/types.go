package config

import "time"

// Config holds the full runtime configuration for the service.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	Port    int
	DevMode bool

	// Provider settings for the outbound LLM call.
	APIKey      string
	BaseURL     string
	Models      []string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration

	// RedisAddr enables the telemetry timeline when set. Empty means
	// the service runs without Redis.
	RedisAddr string
}
