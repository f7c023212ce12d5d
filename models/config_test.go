package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxChunkSize != 2500 {
		t.Errorf("MaxChunkSize = %d, want 2500", cfg.MaxChunkSize)
	}
	if cfg.MinChunkSize != 100 {
		t.Errorf("MinChunkSize = %d, want 100", cfg.MinChunkSize)
	}
	if cfg.MinContentLength != 100 {
		t.Errorf("MinContentLength = %d, want 100", cfg.MinContentLength)
	}
	if cfg.MaxKeywords != 15 {
		t.Errorf("MaxKeywords = %d, want 15", cfg.MaxKeywords)
	}
	if cfg.MaxCategories != 3 {
		t.Errorf("MaxCategories = %d, want 3", cfg.MaxCategories)
	}
	if cfg.LanguageConfidence != 0.7 {
		t.Errorf("LanguageConfidence = %v, want 0.7", cfg.LanguageConfidence)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "max_chunk_size: 1000\nmax_keywords: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MaxChunkSize != 1000 {
		t.Errorf("MaxChunkSize = %d, want override", cfg.MaxChunkSize)
	}
	if cfg.MaxKeywords != 5 {
		t.Errorf("MaxKeywords = %d, want override", cfg.MaxKeywords)
	}
	if cfg.MinChunkSize != 100 {
		t.Errorf("MinChunkSize = %d, want default retained", cfg.MinChunkSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig(missing) = nil error, want failure")
	}
}
