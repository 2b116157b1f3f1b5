package config

import (
	"reflect"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DEV_MODE", "LLM_API_KEY", "LLM_BASE_URL", "LLM_MODELS",
		"LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_TIMEOUT_SECONDS", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DevMode {
		t.Error("Expected DevMode to default to false")
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("Expected max tokens 4096, got %d", cfg.MaxTokens)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Expected 60s timeout, got %v", cfg.Timeout)
	}
	if len(cfg.Models) != 2 {
		t.Errorf("Expected 2 default models, got %v", cfg.Models)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("LLM_MODELS", "model-a, model-b ,,model-c")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if !cfg.DevMode {
		t.Error("Expected DevMode true")
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("Expected API key override, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("Expected base URL override, got %q", cfg.BaseURL)
	}
	if want := []string{"model-a", "model-b", "model-c"}; !reflect.DeepEqual(cfg.Models, want) {
		t.Errorf("Expected models %v, got %v", want, cfg.Models)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Timeout)
	}
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("DEV_MODE", "maybe")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Malformed PORT should fall back to %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Malformed temperature should fall back to 0.7, got %v", cfg.Temperature)
	}
	if cfg.DevMode {
		t.Error("Malformed DEV_MODE should fall back to false")
	}
}

func TestSplitModels(t *testing.T) {
	testCases := []struct {
		raw  string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"solo", []string{"solo"}},
		{",,", []string{}},
	}

	for _, tc := range testCases {
		if got := splitModels(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitModels(%q) = %v, expected %v", tc.raw, got, tc.want)
		}
	}
}
