package render

import (
	"fmt"
	"strings"

	"designkb/internal/domain"
)

// Markdown renders the recommendation as a compact markdown document.
func Markdown(rec domain.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Flutter Design System: %s\n\n", rec.Project)

	if rec.Screen.Name != "" {
		b.WriteString("### Screen Pattern\n")
		fmt.Fprintf(&b, "- **Pattern:** %s\n", rec.Screen.Name)
		if rec.Screen.Sections != "" {
			fmt.Fprintf(&b, "- **Sections:** %s\n", rec.Screen.Sections)
		}
		if rec.Screen.CTAPlacement != "" {
			fmt.Fprintf(&b, "- **CTA Placement:** %s\n", rec.Screen.CTAPlacement)
		}
		if rec.Screen.ConversionOptimization != "" {
			fmt.Fprintf(&b, "- **Conversion:** %s\n", rec.Screen.ConversionOptimization)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Architecture\n")
	fmt.Fprintf(&b, "- **Pattern:** %s\n", rec.Pattern.Name)
	fmt.Fprintf(&b, "- **Structure:** %s\n", rec.Pattern.Architecture)
	fmt.Fprintf(&b, "- **State Management:** %s\n", rec.Pattern.StateManagement)
	if len(rec.Pattern.Recommended) > 0 {
		fmt.Fprintf(&b, "- **Recommended Patterns:** %s\n", strings.Join(rec.Pattern.Recommended, ", "))
	}
	b.WriteString("\n")

	b.WriteString("### UI Style\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", rec.Style.Name)
	if rec.Style.Keywords != "" {
		fmt.Fprintf(&b, "- **Keywords:** %s\n", rec.Style.Keywords)
	}
	if rec.Style.BestFor != "" {
		fmt.Fprintf(&b, "- **Best For:** %s\n", rec.Style.BestFor)
	}
	if rec.Style.DoNotUse != "" {
		fmt.Fprintf(&b, "- **Do Not Use For:** %s\n", rec.Style.DoNotUse)
	}
	b.WriteString("\n")

	b.WriteString("### Color Palette\n")
	b.WriteString("| Role | Hex | Flutter |\n")
	b.WriteString("|------|-----|---------|\n")
	for _, row := range []struct {
		role string
		hex  string
	}{
		{"Primary", rec.Colors.Primary},
		{"Secondary", rec.Colors.Secondary},
		{"CTA", rec.Colors.CTA},
		{"Background", rec.Colors.Background},
		{"Surface", rec.Colors.Surface},
		{"Text", rec.Colors.Text},
	} {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", row.role, row.hex, flutterColor(row.hex))
	}
	if rec.Colors.Notes != "" {
		fmt.Fprintf(&b, "\n*Notes: %s*\n", rec.Colors.Notes)
	}
	if rec.Colors.Strategy != "" {
		fmt.Fprintf(&b, "\n*Color Strategy: %s*\n", rec.Colors.Strategy)
	}
	b.WriteString("\n")

	b.WriteString("### Typography\n")
	fmt.Fprintf(&b, "- **Heading:** %s\n", rec.Typography.Heading)
	fmt.Fprintf(&b, "- **Body:** %s\n", rec.Typography.Body)
	if rec.Typography.Mood != "" {
		fmt.Fprintf(&b, "- **Mood:** %s\n", rec.Typography.Mood)
	}
	if rec.Typography.BestFor != "" {
		fmt.Fprintf(&b, "- **Best For:** %s\n", rec.Typography.BestFor)
	}
	if rec.Typography.FontsURL != "" {
		fmt.Fprintf(&b, "- **Google Fonts:** %s\n", rec.Typography.FontsURL)
	}
	b.WriteString("\n")

	if rec.KeyEffects != "" {
		fmt.Fprintf(&b, "### Key Effects\n%s\n\n", rec.KeyEffects)
	}
	if rec.ConversionFocus != "" {
		fmt.Fprintf(&b, "### Conversion Focus\n%s\n\n", rec.ConversionFocus)
	}
	if len(rec.MustHave) > 0 {
		b.WriteString("### Must-Have Features\n")
		for _, feature := range rec.MustHave {
			fmt.Fprintf(&b, "- %s\n", feature)
		}
		b.WriteString("\n")
	}
	if rec.AntiPatterns != "" {
		b.WriteString("### Avoid (Anti-patterns)\n")
		for _, anti := range splitPlus(rec.AntiPatterns) {
			fmt.Fprintf(&b, "- %s\n", anti)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Pre-Delivery Checklist\n")
	for _, item := range checklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}

	return b.String()
}
