package render

import (
	"fmt"
	"strings"
	"time"

	"designkb/internal/domain"
)

// MasterFile renders the long-form guideline document. Screens built later
// check for a page override file first and fall back to this master.
func MasterFile(rec domain.Recommendation, generated time.Time) string {
	var b strings.Builder

	b.WriteString("# Flutter Design System Master File\n\n")
	b.WriteString("> **LOGIC:** When building a specific screen, first check `design-system/pages/[screen-name].md`.\n")
	b.WriteString("> If that file exists, its rules **override** this Master file.\n")
	b.WriteString("> If not, strictly follow the rules below.\n\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**Project:** %s\n", rec.Project)
	fmt.Fprintf(&b, "**Generated:** %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Category:** %s\n\n", rec.Category)
	b.WriteString("---\n\n")

	b.WriteString("## Architecture\n\n")
	fmt.Fprintf(&b, "- **Pattern:** %s\n", rec.Pattern.Name)
	fmt.Fprintf(&b, "- **Structure:** %s\n", rec.Pattern.Architecture)
	fmt.Fprintf(&b, "- **State Management:** %s\n\n", rec.Pattern.StateManagement)
	b.WriteString("### Folder Structure\n")
	b.WriteString("```\n")
	b.WriteString("lib/\n")
	b.WriteString("  core/                    # Shared utilities, constants, themes\n")
	b.WriteString("    theme/\n")
	b.WriteString("    utils/\n")
	b.WriteString("    widgets/               # Reusable widgets\n")
	b.WriteString("  features/\n")
	b.WriteString("    [feature_name]/\n")
	b.WriteString("      data/                # Repositories, data sources\n")
	b.WriteString("      domain/              # Entities, use cases\n")
	b.WriteString("      presentation/        # Screens, widgets, state\n")
	b.WriteString("  main.dart\n")
	b.WriteString("```\n\n")

	b.WriteString("## Global Rules\n\n")
	b.WriteString("### Color Palette\n\n")
	b.WriteString("| Role | Hex | Flutter Color |\n")
	b.WriteString("|------|-----|---------------|\n")
	for _, row := range []struct {
		role string
		hex  string
	}{
		{"Primary", rec.Colors.Primary},
		{"Secondary", rec.Colors.Secondary},
		{"CTA/Accent", rec.Colors.CTA},
		{"Background", rec.Colors.Background},
		{"Surface", rec.Colors.Surface},
		{"Text", rec.Colors.Text},
	} {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", row.role, row.hex, flutterColor(row.hex))
	}
	b.WriteString("\n")
	if rec.Colors.Notes != "" {
		fmt.Fprintf(&b, "**Color Notes:** %s\n\n", rec.Colors.Notes)
	}

	b.WriteString("### Typography\n\n")
	fmt.Fprintf(&b, "- **Heading Font:** %s\n", rec.Typography.Heading)
	fmt.Fprintf(&b, "- **Body Font:** %s\n", rec.Typography.Body)
	if rec.Typography.Mood != "" {
		fmt.Fprintf(&b, "- **Mood:** %s\n", rec.Typography.Mood)
	}
	if rec.Typography.FontsURL != "" {
		fmt.Fprintf(&b, "- **Google Fonts:** [%s + %s](%s)\n",
			rec.Typography.Heading, rec.Typography.Body, rec.Typography.FontsURL)
	}
	b.WriteString("\n")

	b.WriteString("**Font Sizes (Scale):**\n")
	b.WriteString("```dart\n")
	b.WriteString("// Display\n")
	b.WriteString("displayLarge: 57, displayMedium: 45, displaySmall: 36\n")
	b.WriteString("// Headline\n")
	b.WriteString("headlineLarge: 32, headlineMedium: 28, headlineSmall: 24\n")
	b.WriteString("// Title\n")
	b.WriteString("titleLarge: 22, titleMedium: 16, titleSmall: 14\n")
	b.WriteString("// Body\n")
	b.WriteString("bodyLarge: 16, bodyMedium: 14, bodySmall: 12\n")
	b.WriteString("// Label\n")
	b.WriteString("labelLarge: 14, labelMedium: 12, labelSmall: 11\n")
	b.WriteString("```\n\n")

	b.WriteString("### Spacing\n\n")
	b.WriteString("| Token | Value | Usage |\n")
	b.WriteString("|-------|-------|-------|\n")
	b.WriteString("| `xs` | `4` | Tight gaps |\n")
	b.WriteString("| `sm` | `8` | Icon gaps, inline spacing |\n")
	b.WriteString("| `md` | `16` | Standard padding |\n")
	b.WriteString("| `lg` | `24` | Section padding |\n")
	b.WriteString("| `xl` | `32` | Large gaps |\n")
	b.WriteString("| `xxl` | `48` | Section margins |\n\n")

	b.WriteString("### Border Radius\n\n")
	b.WriteString("| Token | Value | Usage |\n")
	b.WriteString("|-------|-------|-------|\n")
	b.WriteString("| `xs` | `4` | Small chips, badges |\n")
	b.WriteString("| `sm` | `8` | Buttons, inputs |\n")
	b.WriteString("| `md` | `12` | Cards |\n")
	b.WriteString("| `lg` | `16` | Modals, bottom sheets |\n")
	b.WriteString("| `xl` | `24` | Large containers |\n")
	b.WriteString("| `full` | `9999` | Pills, circular |\n\n")

	b.WriteString("---\n\n## Style Guidelines\n\n")
	fmt.Fprintf(&b, "**Style:** %s\n\n", rec.Style.Name)
	if rec.Style.Keywords != "" {
		fmt.Fprintf(&b, "**Keywords:** %s\n\n", rec.Style.Keywords)
	}
	if rec.Style.BestFor != "" {
		fmt.Fprintf(&b, "**Best For:** %s\n\n", rec.Style.BestFor)
	}
	if rec.KeyEffects != "" {
		fmt.Fprintf(&b, "**Key Effects:** %s\n\n", rec.KeyEffects)
	}

	b.WriteString("---\n\n## Anti-Patterns (Do NOT Use)\n\n")
	for _, anti := range splitPlus(rec.AntiPatterns) {
		fmt.Fprintf(&b, "- %s\n", anti)
	}
	b.WriteString("\n### Flutter-Specific Forbidden Patterns\n\n")
	b.WriteString("- **God Widgets**: widgets > 200 lines, split into smaller components\n")
	b.WriteString("- **Business logic in UI**: move to providers/blocs/use cases\n")
	b.WriteString("- **Missing const**: always use `const` for immutable widgets\n")
	b.WriteString("- **setState abuse**: use proper state management for complex state\n")
	b.WriteString("- **Hardcoded strings/colors**: use theme and localization\n")
	b.WriteString("- **Missing error states**: always handle loading/error/empty states\n\n")

	b.WriteString("---\n\n## Pre-Delivery Checklist\n\n")
	b.WriteString("Before delivering any Flutter code, verify:\n\n")
	for _, item := range checklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}

	return b.String()
}
