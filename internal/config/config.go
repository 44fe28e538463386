// Package config provides configuration loading and validation for the CLI
// and server. All analysis policy (thresholds, weights, limits) lives here
// so tests can exercise non-default values.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds every tunable parameter. Values absent from the config file
// keep their defaults; the Gemini API key additionally falls back to the
// GEMINI_API_KEY environment variable.
type Config struct {
	// Language detection
	MinTextLength       int     `json:"min_text_length" validate:"gte=1"`
	ConfidenceThreshold float64 `json:"confidence_threshold" validate:"gte=0"`
	CyrillicRatio       float64 `json:"cyrillic_ratio" validate:"gte=0,lte=1"`

	// Keyword extraction
	TopKeywords int `json:"top_keywords" validate:"gte=1,lte=100"`

	// Scoring
	KeywordWeight      float64 `json:"keyword_weight" validate:"gte=0,lte=1"`
	TitleWeight        float64 `json:"title_weight" validate:"gte=0,lte=1"`
	StructureWeight    float64 `json:"structure_weight" validate:"gte=0,lte=1"`
	MaxRecommendations int     `json:"max_recommendations" validate:"gte=0"`

	// Generation
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model" validate:"required"`
	Tone   string `json:"tone" validate:"oneof=conservative balanced aggressive"`

	// Server
	ListenAddr string `json:"listen_addr" validate:"required"`

	// Logging
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		MinTextLength:       20,
		ConfidenceThreshold: 0.6,
		CyrillicRatio:       0.3,
		TopKeywords:         30,
		KeywordWeight:       0.6,
		TitleWeight:         0.2,
		StructureWeight:     0.2,
		MaxRecommendations:  10,
		Model:               "gemini-2.5-flash",
		Tone:                "balanced",
		ListenAddr:          ":8080",
		LogLevel:            "info",
	}
}

// Load reads a JSON config file on top of the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	sum := c.KeywordWeight + c.TitleWeight + c.StructureWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("config error: score weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}
