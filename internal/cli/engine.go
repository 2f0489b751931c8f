package cli

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"designkb/config"
	"designkb/internal/adapter/analyzer"
	"designkb/internal/adapter/dataset"
	"designkb/internal/adapter/rules"
	"designkb/internal/adapter/store"
	"designkb/internal/port"
	"designkb/internal/registry"
	"designkb/internal/usecase"
)

// buildEngine loads every registered domain's dataset and indexes it.
// Domains without a dataset file stay registered but unloaded, so queries
// against them return empty results.
func buildEngine(cfg *config.Config, rootDir string, showProgress bool) (*usecase.SearchEngine, error) {
	reg := registry.Default()
	engine := usecase.NewSearchEngine(reg, usecase.Options{
		NameBoost:        cfg.Boost.NameFactor,
		CategoryBoost:    cfg.Boost.CategoryFactor,
		CategoryKeywords: cfg.Boost.CategoryKeywords,
		StackExclusions:  cfg.Stacks.Exclusions,
	})

	loader := dataset.NewLoader(cfg.DataDir(rootDir), cfg.Data.Includes, cfg.Data.Excludes)
	tokenizer := analyzer.NewTokenizer()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(reg.Domains()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Loading[reset]"),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	for _, domainCfg := range reg.Domains() {
		records, err := loader.LoadFile(domainCfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", domainCfg.File, err)
		}
		engine.AddDomain(usecase.IndexDomain(domainCfg, records, tokenizer, cfg.Rank.K1, cfg.Rank.B))
		if bar != nil {
			bar.Add(1)
		}
	}

	return engine, nil
}

// buildRecommender wires the reasoning rules into the aggregator.
func buildRecommender(cfg *config.Config, rootDir string, engine *usecase.SearchEngine) (*usecase.Recommender, error) {
	rulePath := filepath.Join(cfg.DataDir(rootDir), cfg.Data.ReasoningFile)
	source, err := rules.LoadFile(rulePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reasoning rules: %w", err)
	}

	plan := make([]usecase.PlanStep, 0, len(cfg.Recommend.Plan))
	for _, entry := range cfg.Recommend.Plan {
		plan = append(plan, usecase.PlanStep{Domain: entry.Domain, TopK: entry.TopK})
	}

	return usecase.NewRecommender(engine, source, usecase.RecommenderOptions{
		ProductDomain: cfg.Recommend.ProductDomain,
		StyleDomain:   cfg.Recommend.StyleDomain,
		KeywordsField: cfg.Recommend.StyleKeywordsField,
		Plan:          plan,
	}), nil
}

// openStore opens the recommendation history store at the configured path.
func openStore(cfg *config.Config, rootDir string) (port.RecommendationStore, error) {
	st, err := store.NewBoltStore(cfg.StorePath(rootDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}
