package usecase

import (
	"fmt"
	"sort"
	"strings"

	"designkb/internal/adapter/analyzer"
	"designkb/internal/adapter/index"
	"designkb/internal/domain"
	"designkb/internal/port"
	"designkb/internal/registry"
)

// DomainData couples one domain's configuration, its loaded records, and
// the ranker built over them.
type DomainData struct {
	Config  registry.DomainConfig
	Records []domain.Record
	Ranker  port.Ranker
}

// IndexDomain builds a BM25 ranker over the domain's records using its
// configured search fields.
func IndexDomain(cfg registry.DomainConfig, records []domain.Record, tokenizer *analyzer.Tokenizer, k1, b float64) *DomainData {
	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = cfg.SearchText(rec)
	}
	return &DomainData{
		Config:  cfg,
		Records: records,
		Ranker:  index.Build(docs, tokenizer, k1, b),
	}
}

// Options holds the boost factors and lookup tables applied after raw
// scoring. Zero factors fall back to the standard 2.0 / 1.5 multipliers.
type Options struct {
	NameBoost        float64
	CategoryBoost    float64
	CategoryKeywords map[string][]string
	StackExclusions  map[string][]string
}

// SearchEngine answers single-domain queries: BM25 scoring followed by the
// boost/filter pipeline. All domains are registered before serving; a
// built engine is read-only and safe for concurrent queries.
type SearchEngine struct {
	registry         *registry.Registry
	domains          map[string]*DomainData
	nameBoost        float64
	categoryBoost    float64
	categoryKeywords map[string][]string
	stackExclusions  map[string][]string
}

func NewSearchEngine(reg *registry.Registry, opts Options) *SearchEngine {
	if opts.NameBoost == 0 {
		opts.NameBoost = 2.0
	}
	if opts.CategoryBoost == 0 {
		opts.CategoryBoost = 1.5
	}
	return &SearchEngine{
		registry:         reg,
		domains:          make(map[string]*DomainData),
		nameBoost:        opts.NameBoost,
		categoryBoost:    opts.CategoryBoost,
		categoryKeywords: opts.CategoryKeywords,
		stackExclusions:  opts.StackExclusions,
	}
}

// AddDomain registers a domain's indexed dataset. Not safe to call once
// the engine is serving queries.
func (e *SearchEngine) AddDomain(data *DomainData) {
	e.domains[data.Config.Name] = data
}

// Registry returns the engine's domain registry.
func (e *SearchEngine) Registry() *registry.Registry {
	return e.registry
}

// StackNames lists the valid stack identifiers in sorted order.
func (e *SearchEngine) StackNames() []string {
	names := make([]string, 0, len(e.stackExclusions))
	for name := range e.stackExclusions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search scores the query against one domain. An empty domainName resolves
// the domain from the query's trigger keywords. An absent or empty dataset
// yields an empty result, not an error.
func (e *SearchEngine) Search(query, domainName string, topK int) (domain.SearchResult, error) {
	var cfg registry.DomainConfig
	if domainName == "" {
		cfg = e.registry.Resolve(query)
	} else {
		var err error
		cfg, err = e.registry.Get(domainName)
		if err != nil {
			return domain.SearchResult{}, err
		}
	}

	res := domain.SearchResult{Domain: cfg.Name, Query: query}

	data := e.domains[cfg.Name]
	if data == nil || data.Ranker == nil || data.Ranker.Len() == 0 {
		return res, nil
	}
	if topK <= 0 {
		topK = data.Ranker.Len()
	}

	ranked := data.Ranker.Score(query)
	ranked = e.applyBoosts(cfg, data.Records, query, ranked)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for _, r := range ranked {
		if r.Score <= 0 {
			continue
		}
		res.Results = append(res.Results, domain.ScoredRecord{
			Record: cfg.Project(data.Records[r.Index]),
			Score:  r.Score,
		})
		if len(res.Results) >= topK {
			break
		}
	}
	res.Count = len(res.Results)

	return res, nil
}

// SearchWithStack searches and then drops records conflicting with the
// chosen stack. It fetches double the requested results before filtering
// so exclusions do not starve the output.
func (e *SearchEngine) SearchWithStack(query, stack, domainName string, topK int) (domain.StackResult, error) {
	key := strings.ToLower(stack)
	excluded, ok := e.stackExclusions[key]
	if !ok {
		return domain.StackResult{}, fmt.Errorf("%w: %q, available: %s",
			domain.ErrUnknownStack, stack, strings.Join(e.StackNames(), ", "))
	}

	fetch := topK * 2
	res, err := e.Search(query, domainName, fetch)
	if err != nil {
		return domain.StackResult{}, err
	}

	cfg, err := e.registry.Get(res.Domain)
	if err != nil {
		return domain.StackResult{}, err
	}

	excludedSet := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		excludedSet[strings.ToLower(name)] = struct{}{}
	}

	filtered := make([]domain.ScoredRecord, 0, len(res.Results))
	for _, sr := range res.Results {
		name := strings.ToLower(sr.Record.Get(cfg.NameField))
		if _, drop := excludedSet[name]; drop {
			continue
		}
		filtered = append(filtered, sr)
		if topK > 0 && len(filtered) >= topK {
			break
		}
	}

	res.Results = filtered
	res.Count = len(filtered)

	return domain.StackResult{
		SearchResult: res,
		Stack:        key,
		Excluded:     excluded,
	}, nil
}

// applyBoosts runs the exact-name and category-preference boosts. Boosts
// only ever raise a positive score; zero and negative scores pass through
// untouched.
func (e *SearchEngine) applyBoosts(cfg registry.DomainConfig, records []domain.Record, query string, ranked []domain.ScoredResult) []domain.ScoredResult {
	queryLower := strings.ToLower(query)
	categories := e.inferCategories(queryLower)

	boostCategory := cfg.CategoryField != "" && len(categories) > 0
	boostName := cfg.BoostName && cfg.NameField != ""
	if !boostName && !boostCategory {
		return ranked
	}

	for i := range ranked {
		r := &ranked[i]
		if r.Score <= 0 {
			continue
		}
		rec := records[r.Index]

		if boostName {
			name := strings.ToLower(rec.Get(cfg.NameField))
			if name != "" && (strings.Contains(queryLower, name) || strings.Contains(name, queryLower)) {
				r.Score *= e.nameBoost
			}
		}
		if boostCategory {
			if _, ok := categories[rec.Get(cfg.CategoryField)]; ok {
				r.Score *= e.categoryBoost
			}
		}
	}
	return ranked
}

// inferCategories scans the lowercased query against the keyword table and
// returns the union of matched category sets. Repeated keyword hits on the
// same category do not stack.
func (e *SearchEngine) inferCategories(queryLower string) map[string]struct{} {
	var categories map[string]struct{}
	for keyword, cats := range e.categoryKeywords {
		if !strings.Contains(queryLower, keyword) {
			continue
		}
		if categories == nil {
			categories = make(map[string]struct{})
		}
		for _, c := range cats {
			categories[c] = struct{}{}
		}
	}
	return categories
}
