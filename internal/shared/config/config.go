package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"kuro-ml/internal/transcription"
)

// Config holds application configuration.
type Config struct {
	Host            string
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string
	RateLimit       RateLimit
	Models          Models
}

// RateLimit bounds inference requests per client.
type RateLimit struct {
	RPS   float64
	Burst int
}

// Models names the backends for each inference operation.
type Models struct {
	Embedding         string
	TranscriptionSize transcription.ModelSize
	VLM               string
	VLMFPS            int
	VLMNumFrames      int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            "8321",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:1420", "tauri://localhost"},
		LogLevel:        "info",
		RateLimit:       RateLimit{RPS: 10, Burst: 20},
		Models: Models{
			TranscriptionSize: transcription.DefaultModelSize,
			VLM:               "Qwen3-VL",
			VLMFPS:            1,
			VLMNumFrames:      30,
		},
	}
}

// Load resolves configuration from the environment, .env files, an optional
// TOML file named by KURO_ML_CONFIG, and defaults, in that order.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/sidecar/.env")

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("KURO_ML_CONFIG")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Env = normalizeEnv(cfg.Env)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Host = getEnv("HOST", cfg.Host)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	cfg.Models.Embedding = getEnv("EMBEDDING_MODEL", cfg.Models.Embedding)
	cfg.Models.VLM = getEnv("VLM_MODEL", cfg.Models.VLM)

	if raw := os.Getenv("TRANSCRIPTION_MODEL_SIZE"); raw != "" {
		size, err := transcription.ParseModelSize(raw)
		if err != nil {
			return fmt.Errorf("TRANSCRIPTION_MODEL_SIZE: %w", err)
		}
		cfg.Models.TranscriptionSize = size
	}

	var err error
	if cfg.RateLimit.RPS, err = positiveFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = positiveInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if cfg.Models.VLMFPS, err = positiveInt("VLM_FPS", cfg.Models.VLMFPS); err != nil {
		return err
	}
	if cfg.Models.VLMNumFrames, err = positiveInt("VLM_NUM_FRAMES", cfg.Models.VLMNumFrames); err != nil {
		return err
	}
	return nil
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func positiveInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func positiveFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", key, raw)
	}
	return v, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
