package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the designkb tool.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Rank      RankConfig      `yaml:"rank"`
	Boost     BoostConfig     `yaml:"boost"`
	Stacks    StacksConfig    `yaml:"stacks"`
	Recommend RecommendConfig `yaml:"recommend"`
	Store     StoreConfig     `yaml:"store"`
}

// DataConfig holds dataset location configuration.
type DataConfig struct {
	Dir           string   `yaml:"dir"`
	Includes      []string `yaml:"includes"`
	Excludes      []string `yaml:"excludes"`
	ReasoningFile string   `yaml:"reasoning_file"`
}

// RankConfig holds BM25 parameters and the default result count.
type RankConfig struct {
	K1   float64 `yaml:"k1"`
	B    float64 `yaml:"b"`
	TopK int     `yaml:"top_k"`
}

// BoostConfig holds the post-scoring boost factors and the keyword table
// driving category-preference boosting.
type BoostConfig struct {
	NameFactor       float64             `yaml:"name_factor"`
	CategoryFactor   float64             `yaml:"category_factor"`
	CategoryKeywords map[string][]string `yaml:"category_keywords"`
}

// StacksConfig maps each stack identifier to the package names that
// conflict with it.
type StacksConfig struct {
	Exclusions map[string][]string `yaml:"exclusions"`
}

// PlanEntry is one auxiliary-domain search in the aggregation plan.
type PlanEntry struct {
	Domain string `yaml:"domain"`
	TopK   int    `yaml:"top_k"`
}

// RecommendConfig holds the aggregator's search plan and style-selection
// settings.
type RecommendConfig struct {
	ProductDomain      string      `yaml:"product_domain"`
	StyleDomain        string      `yaml:"style_domain"`
	StyleKeywordsField string      `yaml:"style_keywords_field"`
	Plan               []PlanEntry `yaml:"plan"`
}

// StoreConfig holds recommendation persistence configuration.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:           "data",
			Includes:      []string{"**/*.csv"},
			Excludes:      []string{},
			ReasoningFile: "ui-reasoning.csv",
		},
		Rank: RankConfig{
			K1:   1.5,
			B:    0.75,
			TopK: 5,
		},
		Boost: BoostConfig{
			NameFactor:     2.0,
			CategoryFactor: 1.5,
			CategoryKeywords: map[string][]string{
				"network":   {"Networking"},
				"http":      {"Networking"},
				"api":       {"Networking"},
				"database":  {"Database"},
				"storage":   {"Database", "Data"},
				"chart":     {"Visualization"},
				"graph":     {"Visualization"},
				"animation": {"Animation", "UI"},
				"state":     {"State Management"},
				"di":        {"Dependency Injection"},
				"security":  {"Security"},
				"media":     {"Media"},
				"test":      {"Testing"},
			},
		},
		Stacks: StacksConfig{
			Exclusions: map[string][]string{
				"riverpod": {"bloc", "flutter_bloc", "provider", "hydrated_bloc"},
				"bloc":     {"riverpod", "flutter_riverpod", "provider"},
				"provider": {"riverpod", "flutter_riverpod", "bloc", "flutter_bloc"},
			},
		},
		Recommend: RecommendConfig{
			ProductDomain:      "product",
			StyleDomain:        "style",
			StyleKeywordsField: "Keywords",
			Plan: []PlanEntry{
				{Domain: "style", TopK: 3},
				{Domain: "color", TopK: 2},
				{Domain: "typography", TopK: 2},
				{Domain: "pattern", TopK: 3},
				{Domain: "architect", TopK: 2},
				{Domain: "landing", TopK: 2},
			},
		},
		Store: StoreConfig{
			Path: filepath.Join(".designkb", "recommendations.db"),
		},
	}
}

// Load loads configuration from a YAML file, merging over defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for designkb.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try designkb.yaml in the directory
	path := filepath.Join(dir, "designkb.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .designkb/config.yaml
	path = filepath.Join(dir, ".designkb", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StorePath returns the recommendation store path rooted at dir.
func (c *Config) StorePath(dir string) string {
	if filepath.IsAbs(c.Store.Path) {
		return c.Store.Path
	}
	return filepath.Join(dir, c.Store.Path)
}

// DataDir returns the dataset directory rooted at dir.
func (c *Config) DataDir(dir string) string {
	if filepath.IsAbs(c.Data.Dir) {
		return c.Data.Dir
	}
	return filepath.Join(dir, c.Data.Dir)
}
