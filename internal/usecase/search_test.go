package usecase

import (
	"errors"
	"strings"
	"testing"

	"designkb/internal/adapter/analyzer"
	"designkb/internal/domain"
	"designkb/internal/registry"
)

func rec(pairs ...string) domain.Record {
	fields := make([]domain.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields = append(fields, domain.Field{Name: pairs[i], Value: pairs[i+1]})
	}
	return domain.NewRecord(fields)
}

func widgetConfig() registry.DomainConfig {
	return registry.DomainConfig{
		Name:         "widget",
		SearchFields: []string{"Widget Name", "Category", "Description"},
		OutputFields: []string{"Widget Name", "Category", "Description"},
		NameField:    "Widget Name",
		BoostName:    true,
		Keywords:     []string{"widget", "listview"},
	}
}

func packageConfig() registry.DomainConfig {
	return registry.DomainConfig{
		Name:          "package",
		SearchFields:  []string{"pkg_name", "category", "description"},
		OutputFields:  []string{"pkg_name", "category", "description"},
		NameField:     "pkg_name",
		CategoryField: "category",
		Keywords:      []string{"package", "http"},
	}
}

func widgetRecords() []domain.Record {
	return []domain.Record{
		rec("Widget Name", "ListView", "Category", "Layout", "Description", "A scrollable linear list with pagination support"),
		rec("Widget Name", "GridView", "Category", "Layout", "Description", "A scrollable grid with pagination support"),
		rec("Widget Name", "Container", "Category", "Layout", "Description", "Painting and sizing"),
	}
}

func packageRecords() []domain.Record {
	return []domain.Record{
		rec("pkg_name", "dio", "category", "Networking", "description", "Powerful http network client with interceptors"),
		rec("pkg_name", "riverpod", "category", "State Management", "description", "Reactive state management and caching"),
		rec("pkg_name", "bloc", "category", "State Management", "description", "Predictable state management via streams"),
		rec("pkg_name", "http", "category", "Networking", "description", "Composable http requests"),
	}
}

func newTestEngine(t *testing.T) *SearchEngine {
	t.Helper()
	reg := registry.New([]registry.DomainConfig{widgetConfig(), packageConfig()}, "widget")
	engine := NewSearchEngine(reg, Options{
		CategoryKeywords: map[string][]string{
			"network": {"Networking"},
			"http":    {"Networking"},
		},
		StackExclusions: map[string][]string{
			"riverpod": {"bloc", "flutter_bloc", "provider", "hydrated_bloc"},
			"bloc":     {"riverpod", "flutter_riverpod", "provider"},
			"provider": {"riverpod", "flutter_riverpod", "bloc", "flutter_bloc"},
		},
	})

	tok := analyzer.NewTokenizer()
	engine.AddDomain(IndexDomain(widgetConfig(), widgetRecords(), tok, 1.5, 0.75))
	engine.AddDomain(IndexDomain(packageConfig(), packageRecords(), tok, 1.5, 0.75))
	return engine
}

func TestSearch_RanksAndBoostsExactName(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Search("listview pagination", "widget", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Domain != "widget" {
		t.Errorf("Domain = %q", res.Domain)
	}
	if res.Count == 0 {
		t.Fatal("expected matches")
	}
	if got := res.Results[0].Record.Get("Widget Name"); got != "ListView" {
		t.Errorf("expected boosted ListView first, got %q", got)
	}
	for i := 1; i < len(res.Results); i++ {
		if res.Results[i].Score > res.Results[i-1].Score {
			t.Errorf("results not sorted at %d", i)
		}
	}
}

func TestSearch_NameBoostIsMonotonic(t *testing.T) {
	engine := newTestEngine(t)

	// same query scored without boost via a registry with boosting off
	cfg := widgetConfig()
	cfg.BoostName = false
	plain := NewSearchEngine(registry.New([]registry.DomainConfig{cfg}, "widget"), Options{})
	plain.AddDomain(IndexDomain(cfg, widgetRecords(), analyzer.NewTokenizer(), 1.5, 0.75))

	boosted, err := engine.Search("listview pagination", "widget", 3)
	if err != nil {
		t.Fatal(err)
	}
	unboosted, err := plain.Search("listview pagination", "widget", 3)
	if err != nil {
		t.Fatal(err)
	}

	find := func(res domain.SearchResult, name string) float64 {
		for _, sr := range res.Results {
			if sr.Record.Get("Widget Name") == name {
				return sr.Score
			}
		}
		t.Fatalf("%s not in results", name)
		return 0
	}

	before := find(unboosted, "ListView")
	after := find(boosted, "ListView")
	if after < before {
		t.Errorf("boost lowered score: %v -> %v", before, after)
	}
	if after < 2*before-1e-9 {
		t.Errorf("expected doubled score, got %v (base %v)", after, before)
	}
	// GridView matches the same rare term but carries no name boost
	if find(boosted, "GridView") != find(unboosted, "GridView") {
		t.Error("unboosted record's score changed")
	}
}

func TestSearch_CategoryBoost(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Search("state management for network calls", "package", 4)
	if err != nil {
		t.Fatal(err)
	}

	// the query mentions "network": Networking packages get the 1.5 factor
	var dioScore, riverpodScore float64
	for _, sr := range res.Results {
		switch sr.Record.Get("pkg_name") {
		case "dio":
			dioScore = sr.Score
		case "riverpod":
			riverpodScore = sr.Score
		}
	}
	if dioScore == 0 || riverpodScore == 0 {
		t.Fatalf("expected both dio and riverpod in results: %+v", res.Results)
	}

	noBoost := NewSearchEngine(registry.New([]registry.DomainConfig{packageConfig()}, "package"), Options{})
	noBoost.AddDomain(IndexDomain(packageConfig(), packageRecords(), analyzer.NewTokenizer(), 1.5, 0.75))
	plain, err := noBoost.Search("state management for network calls", "package", 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, sr := range plain.Results {
		if sr.Record.Get("pkg_name") == "dio" {
			if dioScore < 1.5*sr.Score-1e-9 {
				t.Errorf("expected 1.5x category boost: %v vs base %v", dioScore, sr.Score)
			}
		}
	}
}

func TestSearch_ResolvesDomainFromQuery(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Search("http client package", "", 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Domain != "package" {
		t.Errorf("expected package domain, got %q", res.Domain)
	}
}

func TestSearch_UnknownDomain(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Search("anything", "gadget", 5)
	if !errors.Is(err, domain.ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
	if !strings.Contains(err.Error(), "widget") {
		t.Errorf("error should list valid domains: %v", err)
	}
}

func TestSearch_EmptyDataset(t *testing.T) {
	cfg := registry.DomainConfig{Name: "icon", SearchFields: []string{"Icon Name"}, OutputFields: []string{"Icon Name"}}
	reg := registry.New([]registry.DomainConfig{cfg}, "icon")
	engine := NewSearchEngine(reg, Options{})
	engine.AddDomain(IndexDomain(cfg, nil, analyzer.NewTokenizer(), 1.5, 0.75))

	res, err := engine.Search("home icon", "icon", 5)
	if err != nil {
		t.Fatalf("empty dataset should not error, got %v", err)
	}
	if res.Count != 0 || len(res.Results) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestSearch_UnloadedDomain(t *testing.T) {
	reg := registry.New([]registry.DomainConfig{widgetConfig()}, "widget")
	engine := NewSearchEngine(reg, Options{})

	res, err := engine.Search("listview", "widget", 5)
	if err != nil {
		t.Fatalf("absent dataset should not error, got %v", err)
	}
	if res.Count != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestSearch_TruncatesAndDropsNonPositive(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Search("scrollable", "widget", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 1 {
		t.Fatalf("expected truncation to 1, got %d", len(res.Results))
	}
	for _, sr := range res.Results {
		if sr.Score <= 0 {
			t.Errorf("non-positive score in output: %v", sr.Score)
		}
	}
	// Container does not match and must never appear
	res, err = engine.Search("scrollable", "widget", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, sr := range res.Results {
		if sr.Record.Get("Widget Name") == "Container" {
			t.Error("zero-score record leaked into results")
		}
	}
}

func TestSearch_ProjectsOutputFields(t *testing.T) {
	cfg := registry.DomainConfig{
		Name:         "widget",
		SearchFields: []string{"Widget Name", "Description"},
		OutputFields: []string{"Widget Name"},
		NameField:    "Widget Name",
	}
	reg := registry.New([]registry.DomainConfig{cfg}, "widget")
	engine := NewSearchEngine(reg, Options{})
	engine.AddDomain(IndexDomain(cfg, widgetRecords(), analyzer.NewTokenizer(), 1.5, 0.75))

	res, err := engine.Search("pagination", "widget", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) == 0 {
		t.Fatal("expected results")
	}
	out := res.Results[0].Record
	if out.Has("Description") {
		t.Error("non-output field leaked into result record")
	}
	if !out.Has("Widget Name") {
		t.Error("output field missing from result record")
	}
}

func TestSearchWithStack_FiltersConflicts(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.SearchWithStack("state management", "riverpod", "package", 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stack != "riverpod" {
		t.Errorf("Stack = %q", res.Stack)
	}
	wantExcluded := []string{"bloc", "flutter_bloc", "provider", "hydrated_bloc"}
	if len(res.Excluded) != len(wantExcluded) {
		t.Fatalf("Excluded = %v", res.Excluded)
	}
	for i, name := range wantExcluded {
		if res.Excluded[i] != name {
			t.Errorf("Excluded[%d] = %q, want %q", i, res.Excluded[i], name)
		}
	}
	for _, sr := range res.Results {
		if sr.Record.Get("pkg_name") == "bloc" {
			t.Error("excluded package leaked through stack filter")
		}
	}
	// riverpod itself survives
	found := false
	for _, sr := range res.Results {
		if sr.Record.Get("pkg_name") == "riverpod" {
			found = true
		}
	}
	if !found {
		t.Error("expected riverpod in filtered results")
	}
}

func TestSearchWithStack_PureSubtraction(t *testing.T) {
	engine := newTestEngine(t)

	unfiltered, err := engine.Search("state management", "package", 10)
	if err != nil {
		t.Fatal(err)
	}
	filtered, err := engine.SearchWithStack("state management", "bloc", "package", 10)
	if err != nil {
		t.Fatal(err)
	}

	excludedSet := map[string]bool{}
	for _, name := range filtered.Excluded {
		excludedSet[name] = true
	}
	want := 0
	for _, sr := range unfiltered.Results {
		if !excludedSet[strings.ToLower(sr.Record.Get("pkg_name"))] {
			want++
		}
	}
	if filtered.Count != want {
		t.Errorf("filtered count %d, want unfiltered minus excluded = %d", filtered.Count, want)
	}
}

func TestSearchWithStack_UnknownStack(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.SearchWithStack("state management", "redux", "package", 5)
	if !errors.Is(err, domain.ErrUnknownStack) {
		t.Fatalf("expected ErrUnknownStack, got %v", err)
	}
	for _, stack := range []string{"riverpod", "bloc", "provider"} {
		if !strings.Contains(err.Error(), stack) {
			t.Errorf("error should name stack %q: %v", stack, err)
		}
	}
}
