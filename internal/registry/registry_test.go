package registry

import (
	"errors"
	"strings"
	"testing"

	"designkb/internal/domain"
)

func testDomains() []DomainConfig {
	return []DomainConfig{
		{Name: "widget", Keywords: []string{"widget", "listview", "button"}},
		{Name: "package", Keywords: []string{"package", "http", "dio"}},
		{Name: "color", Keywords: []string{"color", "palette"}},
	}
}

func TestGet_Known(t *testing.T) {
	reg := New(testDomains(), "widget")

	cfg, err := reg.Get("package")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "package" {
		t.Errorf("expected package config, got %q", cfg.Name)
	}
}

func TestGet_Unknown(t *testing.T) {
	reg := New(testDomains(), "widget")

	_, err := reg.Get("gadget")
	if !errors.Is(err, domain.ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
	// the error names the valid domains
	for _, name := range []string{"widget", "package", "color"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list %q: %v", name, err)
		}
	}
}

func TestResolve_MostHitsWins(t *testing.T) {
	reg := New(testDomains(), "widget")

	cfg := reg.Resolve("http client package for dio")
	if cfg.Name != "package" {
		t.Errorf("expected package, got %q", cfg.Name)
	}
}

func TestResolve_TiesBreakInDeclarationOrder(t *testing.T) {
	reg := New(testDomains(), "color")

	// one hit each for widget and package; widget is declared first
	cfg := reg.Resolve("widget package")
	if cfg.Name != "widget" {
		t.Errorf("expected widget on tie, got %q", cfg.Name)
	}
}

func TestResolve_ZeroHitsFallsBackToDefault(t *testing.T) {
	reg := New(testDomains(), "widget")

	cfg := reg.Resolve("completely unrelated query")
	if cfg.Name != "widget" {
		t.Errorf("expected default domain, got %q", cfg.Name)
	}
}

func TestNew_UnregisteredDefaultFallsBackToFirstDomain(t *testing.T) {
	reg := New(testDomains(), "nonexistent")

	if got := reg.DefaultDomain(); got != "widget" {
		t.Errorf("DefaultDomain = %q, want first declared domain", got)
	}
	cfg := reg.Resolve("no trigger keywords here at all")
	if cfg.Name != "widget" {
		t.Errorf("Resolve fallback = %q, want %q", cfg.Name, "widget")
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg := New(nil, "widget")

	if cfg := reg.Resolve("anything"); cfg.Name != "" {
		t.Errorf("expected zero config from empty registry, got %q", cfg.Name)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	names := reg.Names()
	if len(names) != 14 {
		t.Fatalf("expected 14 default domains, got %d", len(names))
	}
	if names[0] != "widget" {
		t.Errorf("expected widget first, got %q", names[0])
	}
	if reg.DefaultDomain() != "widget" {
		t.Errorf("expected widget default, got %q", reg.DefaultDomain())
	}

	cfg := reg.Resolve("fintech saas for healthcare")
	if cfg.Name != "product" {
		t.Errorf("expected product domain, got %q", cfg.Name)
	}
}

func TestProject_KeepsOutputOrderSkipsMissing(t *testing.T) {
	cfg := DomainConfig{
		OutputFields: []string{"Name", "Category", "Notes"},
	}
	rec := domain.NewRecord([]domain.Field{
		{Name: "Category", Value: "Layout"},
		{Name: "Name", Value: "ListView"},
	})

	out := cfg.Project(rec)
	fields := out.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 projected fields, got %d", len(fields))
	}
	if fields[0].Name != "Name" || fields[1].Name != "Category" {
		t.Errorf("projection order wrong: %+v", fields)
	}
	if out.Has("Notes") {
		t.Error("missing source field should not appear in projection")
	}
}

func TestSearchText(t *testing.T) {
	cfg := DomainConfig{SearchFields: []string{"Name", "Description"}}
	rec := domain.NewRecord([]domain.Field{
		{Name: "Name", Value: "GridView"},
		{Name: "Description", Value: "scrollable grid"},
		{Name: "Internal", Value: "not searched"},
	})

	text := cfg.SearchText(rec)
	if text != "GridView scrollable grid" {
		t.Errorf("SearchText = %q", text)
	}
}
