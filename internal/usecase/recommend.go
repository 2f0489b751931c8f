package usecase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"designkb/internal/domain"
	"designkb/internal/port"
)

// PlanStep is one auxiliary-domain search in the aggregation plan.
type PlanStep struct {
	Domain string
	TopK   int
}

// DefaultPlan mirrors the standard aggregation plan: one search per
// auxiliary domain with its fixed result count.
func DefaultPlan() []PlanStep {
	return []PlanStep{
		{Domain: "style", TopK: 3},
		{Domain: "color", TopK: 2},
		{Domain: "typography", TopK: 2},
		{Domain: "pattern", TopK: 3},
		{Domain: "architect", TopK: 2},
		{Domain: "landing", TopK: 2},
	}
}

// RecommenderOptions configures the aggregation plan and the fields used
// for style selection.
type RecommenderOptions struct {
	ProductDomain string
	StyleDomain   string
	KeywordsField string
	Plan          []PlanStep
}

// Recommender aggregates top results across several domains into a single
// design-system recommendation.
type Recommender struct {
	engine        *SearchEngine
	rules         port.RuleSource
	productDomain string
	styleDomain   string
	keywordsField string
	plan          []PlanStep
}

func NewRecommender(engine *SearchEngine, rules port.RuleSource, opts RecommenderOptions) *Recommender {
	if opts.ProductDomain == "" {
		opts.ProductDomain = "product"
	}
	if opts.StyleDomain == "" {
		opts.StyleDomain = "style"
	}
	if opts.KeywordsField == "" {
		opts.KeywordsField = "Keywords"
	}
	if len(opts.Plan) == 0 {
		opts.Plan = DefaultPlan()
	}
	return &Recommender{
		engine:        engine,
		rules:         rules,
		productDomain: opts.ProductDomain,
		styleDomain:   opts.StyleDomain,
		keywordsField: opts.KeywordsField,
		plan:          opts.Plan,
	}
}

// DefaultRule is the documented fallback when no reasoning rule matches
// the resolved category.
func DefaultRule() domain.ReasoningRule {
	return domain.ReasoningRule{
		Pattern:        "Clean Architecture + Feature-First",
		StylePriority:  []string{"Minimalism", "Flat Design"},
		ColorMood:      "Professional",
		TypographyMood: "Clean",
		KeyEffects:     "Subtle animations, smooth transitions",
		Severity:       "MEDIUM",
	}
}

// Generate runs the aggregation pipeline for one top-level query: resolve
// the category, match a reasoning rule, search the auxiliary domains in
// parallel, pick the best candidate per domain, and merge.
func (r *Recommender) Generate(query, project string) (domain.Recommendation, error) {
	// Step 1: the product domain's top match names the category.
	prodRes, err := r.engine.Search(query, r.productDomain, 1)
	if err != nil {
		return domain.Recommendation{}, err
	}
	category := "General"
	if len(prodRes.Results) > 0 {
		prodCfg, err := r.engine.Registry().Get(r.productDomain)
		if err != nil {
			return domain.Recommendation{}, err
		}
		if name := prodRes.Results[0].Record.Get(prodCfg.NameField); name != "" {
			category = name
		}
	}

	// Step 2: match a reasoning rule for the category.
	rule, matched := r.findRule(category)
	if !matched {
		rule = DefaultRule()
	}

	// Step 3: independent searches across the auxiliary domains. Each
	// search touches only immutable index state; the merge keys off the
	// domain name, so completion order does not matter.
	results, err := r.searchPlan(query, rule.StylePriority)
	if err != nil {
		return domain.Recommendation{}, err
	}

	// Step 4: best candidate per domain.
	style := r.selectBestStyle(results[r.styleDomain].Results, rule.StylePriority)
	color := firstRecord(results["color"])
	typography := firstRecord(results["typography"])
	landing := firstRecord(results["landing"])
	architect := firstRecord(results["architect"])

	var patterns []string
	for i, sr := range results["pattern"].Results {
		if i >= 3 {
			break
		}
		if name := sr.Record.Get("pattern_name"); name != "" {
			patterns = append(patterns, name)
		}
	}

	// Step 5: merge.
	return r.merge(query, project, category, rule, matched, style, color, typography, landing, architect, patterns), nil
}

// searchPlan runs every plan step on a worker pool and collects results by
// domain. The style search carries the rule's first two style priorities
// as extra query hints.
func (r *Recommender) searchPlan(query string, stylePriority []string) (map[string]domain.SearchResult, error) {
	pool, err := ants.NewPool(len(r.plan))
	if err != nil {
		return nil, fmt.Errorf("failed to create search pool: %w", err)
	}
	defer pool.Release()

	results := make(map[string]domain.SearchResult, len(r.plan))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	for _, step := range r.plan {
		step := step
		q := query
		if step.Domain == r.styleDomain && len(stylePriority) > 0 {
			hints := stylePriority
			if len(hints) > 2 {
				hints = hints[:2]
			}
			q = query + " " + strings.Join(hints, " ")
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			res, err := r.engine.Search(q, step.Domain, step.TopK)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[step.Domain] = res
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// findRule matches a reasoning rule for the category with three fallbacks:
// exact label match, substring either direction, then token overlap on the
// label's "/" and "-" separated words.
func (r *Recommender) findRule(category string) (domain.ReasoningRule, bool) {
	categoryLower := strings.ToLower(category)
	rules := r.rules.Rules()

	for _, rule := range rules {
		if strings.ToLower(rule.Category) == categoryLower {
			return rule, true
		}
	}

	for _, rule := range rules {
		label := strings.ToLower(rule.Category)
		if label == "" {
			continue
		}
		if strings.Contains(categoryLower, label) || strings.Contains(label, categoryLower) {
			return rule, true
		}
	}

	for _, rule := range rules {
		label := strings.ToLower(rule.Category)
		label = strings.ReplaceAll(label, "/", " ")
		label = strings.ReplaceAll(label, "-", " ")
		for _, word := range strings.Fields(label) {
			if strings.Contains(categoryLower, word) {
				return rule, true
			}
		}
	}

	return domain.ReasoningRule{}, false
}

// selectBestStyle picks the style candidate by priority: a name-field
// containment hit wins immediately in priority order; otherwise weighted
// keyword scoring (name 10, keywords field 3, any field 1) decides; if
// nothing scores, the first ranked candidate is the fallback.
func (r *Recommender) selectBestStyle(candidates []domain.ScoredRecord, priorities []string) domain.Record {
	if len(candidates) == 0 {
		return domain.Record{}
	}
	if len(priorities) == 0 {
		return candidates[0].Record
	}

	styleCfg, err := r.engine.Registry().Get(r.styleDomain)
	if err != nil {
		return candidates[0].Record
	}

	for _, priority := range priorities {
		p := strings.ToLower(strings.TrimSpace(priority))
		if p == "" {
			continue
		}
		for _, c := range candidates {
			name := strings.ToLower(c.Record.Get(styleCfg.NameField))
			if name == "" {
				continue
			}
			if strings.Contains(name, p) || strings.Contains(p, name) {
				return c.Record
			}
		}
	}

	best := -1
	bestScore := 0
	for i, c := range candidates {
		name := strings.ToLower(c.Record.Get(styleCfg.NameField))
		keywords := strings.ToLower(c.Record.Get(r.keywordsField))

		score := 0
		for _, priority := range priorities {
			p := strings.ToLower(strings.TrimSpace(priority))
			if p == "" {
				continue
			}
			switch {
			case strings.Contains(name, p):
				score += 10
			case strings.Contains(keywords, p):
				score += 3
			case c.Record.ContainsFold(p):
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best >= 0 {
		return candidates[best].Record
	}
	return candidates[0].Record
}

// conversionTable maps category substrings to conversion-focus guidance,
// checked in declaration order.
var conversionTable = []struct {
	key   string
	focus string
}{
	{"e-commerce", "Purchase conversion, Add to cart, Quick checkout"},
	{"fintech", "Trust building, Security perception, Transaction completion"},
	{"banking", "Trust building, Security perception, Transaction completion"},
	{"health", "Appointment booking, Trust signals, Accessibility"},
	{"fitness", "Engagement, Progress motivation, Habit formation"},
	{"social", "Engagement, Retention, Content sharing"},
	{"education", "Progress tracking, Completion rates, Engagement"},
	{"productivity", "Task completion, Efficiency, Quick actions"},
	{"food", "Order conversion, Reorder, Quick checkout"},
	{"travel", "Booking conversion, Search efficiency, Trust"},
	{"gaming", "Engagement, Retention, In-app purchases"},
}

const defaultConversionFocus = "User engagement and task completion"

// ConversionFocus derives the conversion guidance for a category label.
func ConversionFocus(category string) string {
	categoryLower := strings.ToLower(category)
	for _, entry := range conversionTable {
		if strings.Contains(categoryLower, entry.key) {
			return entry.focus
		}
	}
	return defaultConversionFocus
}

func firstRecord(res domain.SearchResult) domain.Record {
	if len(res.Results) == 0 {
		return domain.Record{}
	}
	return res.Results[0].Record
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func (r *Recommender) merge(query, project, category string, rule domain.ReasoningRule, matched bool,
	style, color, typography, landing, architect domain.Record, patterns []string) domain.Recommendation {

	// Effects fall back style -> landing -> rule.
	styleEffects := style.Get("Effects & Animation")
	combined := fallback(styleEffects, landing.Get("Recommended Effects"))
	if combined == "" {
		combined = rule.KeyEffects
	}

	conversionFocus := ""
	if matched {
		conversionFocus = ConversionFocus(category)
	}

	return domain.Recommendation{
		Project:  fallback(project, strings.ToUpper(query)),
		Category: category,
		Pattern: domain.PatternChoice{
			Name:            rule.Pattern,
			Architecture:    fallback(architect.Get("layer"), "Feature-First"),
			StateManagement: "Riverpod / BLoC",
			Recommended:     patterns,
		},
		Screen: domain.ScreenChoice{
			Name:                   fallback(landing.Get("Pattern Name"), "Hero + Features + CTA"),
			Sections:               fallback(landing.Get("Section Order"), "Hero > Features > CTA"),
			CTAPlacement:           fallback(landing.Get("Primary CTA Placement"), "Bottom + Sticky"),
			ColorStrategy:          landing.Get("Color Strategy"),
			ConversionOptimization: landing.Get("Conversion Optimization"),
		},
		Style: domain.StyleChoice{
			Name:     fallback(style.Get("Style Category"), "Minimalism"),
			Type:     fallback(style.Get("Type"), "General"),
			Effects:  styleEffects,
			Keywords: style.Get("Keywords"),
			BestFor:  style.Get("Best For"),
			DoNotUse: style.Get("Do Not Use For"),
		},
		Colors: domain.ColorChoice{
			Primary:    fallback(color.Get("Primary (Hex)"), "#2563EB"),
			Secondary:  fallback(color.Get("Secondary (Hex)"), "#3B82F6"),
			CTA:        fallback(color.Get("CTA (Hex)"), "#F97316"),
			Background: "#FFFFFF",
			Surface:    "#F8FAFC",
			Text:       "#1E293B",
			Notes:      color.Get("Notes"),
			Strategy:   fallback(landing.Get("Color Strategy"), rule.ColorMood),
		},
		Typography: domain.TypographyChoice{
			Heading:  fallback(typography.Get("Heading Font"), "Inter"),
			Body:     fallback(typography.Get("Body Font"), "Inter"),
			Mood:     fallback(typography.Get("Mood/Style Keywords"), rule.TypographyMood),
			BestFor:  typography.Get("Best For"),
			FontsURL: typography.Get("Google Fonts URL"),
		},
		KeyEffects:      combined,
		AntiPatterns:    rule.AntiPatterns,
		DecisionRules:   rule.DecisionRules,
		Severity:        fallback(rule.Severity, "MEDIUM"),
		ConversionFocus: conversionFocus,
		MustHave:        rule.MustHaveFeatures(),
	}
}
