package domain

import "strings"

// FieldState reports whether a record field is present, present but empty,
// or missing from the record's schema.
type FieldState int

const (
	FieldMissing FieldState = iota
	FieldEmpty
	FieldSet
)

type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is an ordered, immutable flat mapping from field name to value.
// Field order follows the dataset's column order.
type Record struct {
	fields []Field
	byName map[string]int
}

func NewRecord(fields []Field) Record {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, exists := byName[f.Name]; !exists {
			byName[f.Name] = i
		}
	}
	return Record{fields: fields, byName: byName}
}

// Lookup returns the field value and whether the field is set, empty, or
// missing entirely.
func (r Record) Lookup(name string) (string, FieldState) {
	i, ok := r.byName[name]
	if !ok {
		return "", FieldMissing
	}
	if r.fields[i].Value == "" {
		return "", FieldEmpty
	}
	return r.fields[i].Value, FieldSet
}

// Get returns the field value, or "" when the field is empty or missing.
func (r Record) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Has reports whether the field exists in the record's schema.
func (r Record) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r Record) Len() int {
	return len(r.fields)
}

// Text joins all field values into one string, used for whole-record
// substring matching.
func (r Record) Text() string {
	parts := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		if f.Value != "" {
			parts = append(parts, f.Value)
		}
	}
	return strings.Join(parts, " ")
}

// ContainsFold reports whether any field value contains s case-insensitively.
func (r Record) ContainsFold(s string) bool {
	return strings.Contains(strings.ToLower(r.Text()), strings.ToLower(s))
}

// ScoredResult pairs a record's positional index in its dataset with its
// ranking score.
type ScoredResult struct {
	Index int
	Score float64
}

// ScoredRecord is an output record with its final score.
type ScoredRecord struct {
	Record Record  `json:"record"`
	Score  float64 `json:"score"`
}

// SearchResult is the response of a single-domain query.
type SearchResult struct {
	Domain  string         `json:"domain"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []ScoredRecord `json:"results"`
}

// StackResult is a SearchResult with stack-conflict filtering applied.
type StackResult struct {
	SearchResult
	Stack    string   `json:"stack"`
	Excluded []string `json:"excluded"`
}

// DecisionKind tags a decision rule as a must-have feature or free-form
// guidance.
type DecisionKind int

const (
	DecisionOther DecisionKind = iota
	DecisionMustHave
)

type DecisionRule struct {
	Kind  DecisionKind `json:"kind"`
	Key   string       `json:"key"`
	Value string       `json:"value"`
}

// ReasoningRule is one row of the category-keyed reasoning table.
type ReasoningRule struct {
	Category       string         `json:"category"`
	Pattern        string         `json:"pattern"`
	StylePriority  []string       `json:"style_priority"`
	ColorMood      string         `json:"color_mood"`
	TypographyMood string         `json:"typography_mood"`
	KeyEffects     string         `json:"key_effects"`
	AntiPatterns   string         `json:"anti_patterns"`
	DecisionRules  []DecisionRule `json:"decision_rules,omitempty"`
	Severity       string         `json:"severity"`
}

// MustHaveFeatures collects the values of all must-have decision rules in
// rule order.
func (r ReasoningRule) MustHaveFeatures() []string {
	var features []string
	for _, d := range r.DecisionRules {
		if d.Kind == DecisionMustHave {
			features = append(features, d.Value)
		}
	}
	return features
}

type PatternChoice struct {
	Name            string   `json:"name"`
	Architecture    string   `json:"architecture"`
	StateManagement string   `json:"state_management"`
	Recommended     []string `json:"recommended,omitempty"`
}

type ScreenChoice struct {
	Name                   string `json:"name"`
	Sections               string `json:"sections,omitempty"`
	CTAPlacement           string `json:"cta_placement,omitempty"`
	ColorStrategy          string `json:"color_strategy,omitempty"`
	ConversionOptimization string `json:"conversion_optimization,omitempty"`
}

type StyleChoice struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Effects  string `json:"effects,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	BestFor  string `json:"best_for,omitempty"`
	DoNotUse string `json:"do_not_use,omitempty"`
}

type ColorChoice struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	CTA        string `json:"cta"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Notes      string `json:"notes,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
}

type TypographyChoice struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	Mood     string `json:"mood,omitempty"`
	BestFor  string `json:"best_for,omitempty"`
	FontsURL string `json:"fonts_url,omitempty"`
}

// Recommendation is the merged output of the reasoning aggregator. It is
// created fresh per query; persistence is the caller's concern.
type Recommendation struct {
	Project         string           `json:"project"`
	Category        string           `json:"category"`
	Pattern         PatternChoice    `json:"pattern"`
	Screen          ScreenChoice     `json:"screen"`
	Style           StyleChoice      `json:"style"`
	Colors          ColorChoice      `json:"colors"`
	Typography      TypographyChoice `json:"typography"`
	KeyEffects      string           `json:"key_effects,omitempty"`
	AntiPatterns    string           `json:"anti_patterns,omitempty"`
	DecisionRules   []DecisionRule   `json:"decision_rules,omitempty"`
	Severity        string           `json:"severity"`
	ConversionFocus string           `json:"conversion_focus,omitempty"`
	MustHave        []string         `json:"must_have,omitempty"`
}

// PageOverride holds one screen's deviations from the project's master
// guidelines. Layout and State keep insertion order so rendered documents
// are stable.
type PageOverride struct {
	Page            string   `json:"page"`
	PageType        string   `json:"page_type"`
	Layout          []Field  `json:"layout,omitempty"`
	Widgets         []string `json:"widgets,omitempty"`
	State           []Field  `json:"state,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
