package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rank.K1 != 1.5 {
		t.Errorf("expected K1=1.5, got %f", cfg.Rank.K1)
	}
	if cfg.Rank.B != 0.75 {
		t.Errorf("expected B=0.75, got %f", cfg.Rank.B)
	}
	if cfg.Rank.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Rank.TopK)
	}
	if cfg.Boost.NameFactor != 2.0 {
		t.Errorf("expected NameFactor=2.0, got %f", cfg.Boost.NameFactor)
	}
	if cfg.Boost.CategoryFactor != 1.5 {
		t.Errorf("expected CategoryFactor=1.5, got %f", cfg.Boost.CategoryFactor)
	}
	if len(cfg.Stacks.Exclusions) != 3 {
		t.Errorf("expected 3 stacks, got %d", len(cfg.Stacks.Exclusions))
	}
	if len(cfg.Recommend.Plan) != 6 {
		t.Errorf("expected 6 plan entries, got %d", len(cfg.Recommend.Plan))
	}
	if cfg.Recommend.Plan[0].Domain != "style" || cfg.Recommend.Plan[0].TopK != 3 {
		t.Errorf("unexpected first plan entry: %+v", cfg.Recommend.Plan[0])
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "designkb.yaml")

	content := `
rank:
  k1: 1.2
  top_k: 10
data:
  dir: knowledge
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rank.K1 != 1.2 {
		t.Errorf("expected K1=1.2, got %f", cfg.Rank.K1)
	}
	if cfg.Rank.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Rank.TopK)
	}
	if cfg.Data.Dir != "knowledge" {
		t.Errorf("expected Dir=knowledge, got %q", cfg.Data.Dir)
	}
	// untouched sections keep defaults
	if cfg.Boost.NameFactor != 2.0 {
		t.Errorf("expected NameFactor default, got %f", cfg.Boost.NameFactor)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "designkb.yaml")

	content := "rank:\n  top_k: 7\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rank.TopK != 7 {
		t.Errorf("expected TopK=7, got %d", cfg.Rank.TopK)
	}
}

func TestLoadFromDir_NoFile(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rank.TopK != 5 {
		t.Errorf("expected default TopK=5, got %d", cfg.Rank.TopK)
	}
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.DataDir("/project"); got != filepath.Join("/project", "data") {
		t.Errorf("DataDir = %q", got)
	}
	if got := cfg.StorePath("/project"); got != filepath.Join("/project", ".designkb", "recommendations.db") {
		t.Errorf("StorePath = %q", got)
	}

	cfg.Data.Dir = "/abs/data"
	if got := cfg.DataDir("/project"); got != "/abs/data" {
		t.Errorf("absolute DataDir = %q", got)
	}
}
