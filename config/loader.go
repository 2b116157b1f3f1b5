package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort    = 8200
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModels  = "mistralai/mistral-7b-instruct,meta-llama/llama-3.1-8b-instruct"
)

// LoadConfig reads configuration from the environment, preceded by a
// best-effort .env load. A missing .env file is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        envInt("PORT", DefaultPort),
		DevMode:     envBool("DEV_MODE", false),
		APIKey:      os.Getenv("LLM_API_KEY"),
		BaseURL:     envString("LLM_BASE_URL", DefaultBaseURL),
		Models:      splitModels(envString("LLM_MODELS", DefaultModels)),
		Temperature: envFloat("LLM_TEMPERATURE", 0.7),
		MaxTokens:   envInt("LLM_MAX_TOKENS", 4096),
		Timeout:     time.Duration(envInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}

	return cfg, nil
}

func splitModels(raw string) []string {
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if m := strings.TrimSpace(p); m != "" {
			models = append(models, m)
		}
	}
	return models
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
