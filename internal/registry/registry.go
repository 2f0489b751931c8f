package registry

import (
	"fmt"
	"strings"

	"designkb/internal/domain"
)

// DomainConfig describes one knowledge domain: its backing dataset file,
// which fields feed the index, which fields are echoed in results, and the
// trigger keywords used for automatic domain resolution.
type DomainConfig struct {
	Name          string
	File          string
	SearchFields  []string
	OutputFields  []string
	NameField     string
	CategoryField string
	BoostName     bool
	Keywords      []string
}

// SearchText concatenates the record's search fields into the document
// text handed to the index.
func (c DomainConfig) SearchText(rec domain.Record) string {
	parts := make([]string, 0, len(c.SearchFields))
	for _, field := range c.SearchFields {
		parts = append(parts, rec.Get(field))
	}
	return strings.Join(parts, " ")
}

// Project returns a record reduced to the domain's output fields, keeping
// output-field order and skipping fields absent from the record's schema.
func (c DomainConfig) Project(rec domain.Record) domain.Record {
	fields := make([]domain.Field, 0, len(c.OutputFields))
	for _, name := range c.OutputFields {
		if !rec.Has(name) {
			continue
		}
		fields = append(fields, domain.Field{Name: name, Value: rec.Get(name)})
	}
	return domain.NewRecord(fields)
}

// Registry holds the fixed set of known domains. Domains are registered at
// construction and never change afterwards.
type Registry struct {
	domains       []DomainConfig
	byName        map[string]int
	defaultDomain string
}

// New builds a registry over the given domains. A default domain that is
// not among them falls back to the first declared domain, so Resolve
// always has a valid fallback.
func New(domains []DomainConfig, defaultDomain string) *Registry {
	byName := make(map[string]int, len(domains))
	for i, d := range domains {
		byName[d.Name] = i
	}
	if _, ok := byName[defaultDomain]; !ok && len(domains) > 0 {
		defaultDomain = domains[0].Name
	}
	return &Registry{
		domains:       domains,
		byName:        byName,
		defaultDomain: defaultDomain,
	}
}

// Get returns the named domain's configuration.
func (r *Registry) Get(name string) (DomainConfig, error) {
	i, ok := r.byName[name]
	if !ok {
		return DomainConfig{}, fmt.Errorf("%w: %q, available: %s",
			domain.ErrUnknownDomain, name, strings.Join(r.Names(), ", "))
	}
	return r.domains[i], nil
}

// Resolve picks the domain whose trigger keywords appear most often in the
// query. Ties break in declaration order; zero hits fall back to the
// default domain.
func (r *Registry) Resolve(query string) DomainConfig {
	if len(r.domains) == 0 {
		return DomainConfig{}
	}
	queryLower := strings.ToLower(query)

	best := -1
	bestHits := 0
	for i, d := range r.domains {
		hits := 0
		for _, kw := range d.Keywords {
			if strings.Contains(queryLower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = i
			bestHits = hits
		}
	}

	if best < 0 {
		return r.domains[r.byName[r.defaultDomain]]
	}
	return r.domains[best]
}

// Names lists the registered domains in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.domains))
	for i, d := range r.domains {
		names[i] = d.Name
	}
	return names
}

// Domains returns the registered configurations in declaration order.
func (r *Registry) Domains() []DomainConfig {
	out := make([]DomainConfig, len(r.domains))
	copy(out, r.domains)
	return out
}

// DefaultDomain returns the fallback domain name used by Resolve.
func (r *Registry) DefaultDomain() string {
	return r.defaultDomain
}
