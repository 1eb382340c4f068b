package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"kuro-ml/internal/transcription"
)

// fileConfig mirrors the optional TOML config file. Zero values leave the
// defaults untouched.
type fileConfig struct {
	Host        string   `toml:"host"`
	Port        string   `toml:"port"`
	Env         string   `toml:"env"`
	LogLevel    string   `toml:"log_level"`
	CORSOrigins []string `toml:"cors_allow_origins"`

	RateLimit struct {
		RPS   float64 `toml:"rps"`
		Burst int     `toml:"burst"`
	} `toml:"rate_limit"`

	Embedding struct {
		Model string `toml:"model"`
	} `toml:"embedding"`

	Transcription struct {
		ModelSize string `toml:"model_size"`
	} `toml:"transcription"`

	VLM struct {
		Model     string `toml:"model"`
		FPS       int    `toml:"fps"`
		NumFrames int    `toml:"num_frames"`
	} `toml:"vlm"`
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Env != "" {
		cfg.Env = fc.Env
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSAllowOrigin = fc.CORSOrigins
	}
	if fc.Embedding.Model != "" {
		cfg.Models.Embedding = fc.Embedding.Model
	}
	if fc.Transcription.ModelSize != "" {
		size, err := transcription.ParseModelSize(fc.Transcription.ModelSize)
		if err != nil {
			return fmt.Errorf("config file %s: transcription.model_size: %w", path, err)
		}
		cfg.Models.TranscriptionSize = size
	}
	if fc.VLM.Model != "" {
		cfg.Models.VLM = fc.VLM.Model
	}

	switch {
	case fc.RateLimit.RPS < 0, fc.RateLimit.Burst < 0, fc.VLM.FPS < 0, fc.VLM.NumFrames < 0:
		return fmt.Errorf("config file %s: numeric settings must be positive", path)
	}
	if fc.RateLimit.RPS > 0 {
		cfg.RateLimit.RPS = fc.RateLimit.RPS
	}
	if fc.RateLimit.Burst > 0 {
		cfg.RateLimit.Burst = fc.RateLimit.Burst
	}
	if fc.VLM.FPS > 0 {
		cfg.Models.VLMFPS = fc.VLM.FPS
	}
	if fc.VLM.NumFrames > 0 {
		cfg.Models.VLMNumFrames = fc.VLM.NumFrames
	}
	return nil
}
