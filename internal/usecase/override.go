package usecase

import (
	"strings"

	"designkb/internal/domain"
)

// pageTypeTable maps context keywords to screen types, checked in order.
var pageTypeTable = []struct {
	keywords []string
	pageType string
}{
	{[]string{"dashboard", "admin", "analytics", "metrics", "stats", "overview"}, "Dashboard"},
	{[]string{"list", "search", "browse", "filter", "catalog"}, "List / Search"},
	{[]string{"detail", "product", "item", "view"}, "Detail View"},
	{[]string{"form", "edit", "create", "add", "new"}, "Form / Input"},
	{[]string{"profile", "settings", "account", "preferences"}, "Settings / Profile"},
	{[]string{"login", "signin", "signup", "register", "auth"}, "Authentication"},
	{[]string{"home", "landing", "welcome"}, "Home / Landing"},
	{[]string{"chat", "message", "conversation"}, "Chat / Messaging"},
	{[]string{"checkout", "payment", "cart", "order"}, "Checkout / Payment"},
}

// DetectPageType classifies a screen from its name and query context.
func DetectPageType(context string) string {
	contextLower := strings.ToLower(context)
	for _, entry := range pageTypeTable {
		for _, kw := range entry.keywords {
			if strings.Contains(contextLower, kw) {
				return entry.pageType
			}
		}
	}
	return "General"
}

// GeneratePageOverride derives one screen's override guidance from layered
// searches over the widget, pattern, ux and landing domains, plus fixed
// defaults for the detected page type.
func (r *Recommender) GeneratePageOverride(page, pageQuery string) (domain.PageOverride, error) {
	context := strings.ToLower(page)
	if pageQuery != "" {
		context += " " + strings.ToLower(pageQuery)
	}

	patternRes, err := r.engine.Search(context, "pattern", 2)
	if err != nil {
		return domain.PageOverride{}, err
	}
	widgetRes, err := r.engine.Search(context, "widget", 3)
	if err != nil {
		return domain.PageOverride{}, err
	}
	uxRes, err := r.engine.Search(context, "ux", 3)
	if err != nil {
		return domain.PageOverride{}, err
	}
	landingRes, err := r.engine.Search(context, "landing", 1)
	if err != nil {
		return domain.PageOverride{}, err
	}

	ov := domain.PageOverride{
		Page:     page,
		PageType: DetectPageType(context),
	}

	for _, sr := range widgetRes.Results {
		name := sr.Record.Get("Widget Name")
		if name == "" {
			continue
		}
		ov.Widgets = append(ov.Widgets, "`"+name+"` - "+clip(sr.Record.Get("Description"), 60))
	}

	for _, sr := range patternRes.Results {
		if name := sr.Record.Get("pattern_name"); name != "" {
			ov.Recommendations = append(ov.Recommendations, "Consider `"+name+"` pattern")
		}
	}

	var uxGuidelines []string
	for _, sr := range uxRes.Results {
		category := sr.Record.Get("Category")
		if do := sr.Record.Get("Do"); do != "" {
			uxGuidelines = append(uxGuidelines, "Do ("+category+"): "+clip(do, 80))
		}
		if dont := sr.Record.Get("Don't"); dont != "" {
			uxGuidelines = append(uxGuidelines, "Avoid: "+clip(dont, 80))
		}
	}

	if landing := firstRecord(landingRes); landing.Len() > 0 {
		if sections := landing.Get("Section Order"); sections != "" {
			ov.Layout = append(ov.Layout, domain.Field{Name: "Sections", Value: clip(sections, 80)})
		}
		if cta := landing.Get("Primary CTA Placement"); cta != "" {
			ov.Layout = append(ov.Layout, domain.Field{Name: "CTA Placement", Value: cta})
		}
		if conv := landing.Get("Conversion Optimization"); conv != "" {
			ov.Recommendations = append(ov.Recommendations, "Conversion: "+clip(conv, 80))
		}
	}

	applyPageTypeDefaults(&ov, context)

	if len(uxGuidelines) > 3 {
		uxGuidelines = uxGuidelines[:3]
	}
	ov.Recommendations = append(ov.Recommendations, uxGuidelines...)

	if len(ov.Recommendations) == 0 {
		ov.Recommendations = []string{
			"Refer to the master file for all design rules",
			"Add specific overrides as needed for this screen",
		}
	}

	return ov, nil
}

// applyPageTypeDefaults appends the fixed layout/state guidance for the
// screen family the context falls into. Only the first matching family
// applies.
func applyPageTypeDefaults(ov *domain.PageOverride, context string) {
	has := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(context, kw) {
				return true
			}
		}
		return false
	}
	layout := func(name, value string) {
		ov.Layout = append(ov.Layout, domain.Field{Name: name, Value: value})
	}
	state := func(name, value string) {
		ov.State = append(ov.State, domain.Field{Name: name, Value: value})
	}

	switch {
	case has("dashboard", "analytics"):
		layout("Grid", "Use GridView or Wrap for widget cards")
		layout("Scrolling", "CustomScrollView with slivers")
		state("Refresh", "Pull-to-refresh with RefreshIndicator")
		state("Real-time", "Consider StreamBuilder for live data")
	case has("list", "search"):
		layout("List", "ListView.builder for performance")
		layout("Pagination", "Infinite scroll with lazy loading")
		state("Search", "Debounced search with 300ms delay")
		state("Empty State", "Show helpful empty state with action")
	case has("form", "profile", "settings"):
		layout("Form", "Single column, max 600px width")
		state("Validation", "Form validation with FormField")
		state("Autosave", "Consider debounced autosave for settings")
	case has("login", "auth"):
		layout("Layout", "Centered, max 400px width")
		state("Auth", "Handle loading, error, success states")
		state("Biometric", "Consider biometric authentication")
	case has("checkout", "payment"):
		layout("Layout", "Single column, focused flow")
		state("Progress", "Show step indicator for multi-step")
		state("Validation", "Real-time validation for payment fields")
	case has("chat", "message"):
		layout("List", "Reversed ListView for chat bubbles")
		state("Real-time", "WebSocket or Firebase for live updates")
		state("Typing", "Show typing indicator")
	}
}

// clip shortens long dataset text for inline display.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
