// Package models defines the document record and pipeline configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable thresholds of the ingestion pipeline. Zero
// values are not meaningful; start from DefaultConfig and override.
type Config struct {
	// Chunking bounds in characters. A trailing chunk shorter than
	// MinChunkSize is dropped, never emitted truncated.
	MaxChunkSize int `yaml:"max_chunk_size"`
	MinChunkSize int `yaml:"min_chunk_size"`

	// MinContentLength is the text length a selector match must exceed
	// before it is accepted as the main-content region.
	MinContentLength int `yaml:"min_content_length"`

	MaxKeywords   int `yaml:"max_keywords"`
	MaxCategories int `yaml:"max_categories"`

	// LanguageConfidence is the minimum statistical-detection confidence
	// accepted when URL and markup heuristics are inconclusive.
	LanguageConfidence float64 `yaml:"language_confidence"`
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:       2500,
		MinChunkSize:       100,
		MinContentLength:   100,
		MaxKeywords:        15,
		MaxCategories:      3,
		LanguageConfidence: 0.7,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
