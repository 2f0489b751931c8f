package render

import (
	"fmt"
	"strings"

	"designkb/internal/domain"
)

const boxWidth = 90

// ASCIIBox renders the recommendation as a bordered terminal summary.
func ASCIIBox(rec domain.Recommendation) string {
	var lines []string

	border := "+" + strings.Repeat("-", boxWidth-1) + "+"
	blank := "|" + strings.Repeat(" ", boxWidth-1) + "|"
	row := func(text string) {
		s := "|" + text
		if len(s) > boxWidth {
			s = s[:boxWidth]
		}
		lines = append(lines, s+strings.Repeat(" ", boxWidth-len(s))+"|")
	}
	wrapped := func(prefix, text string) {
		for _, line := range wrap(text, boxWidth-len(prefix)-2) {
			row(prefix + line)
		}
	}

	lines = append(lines, border)
	row(fmt.Sprintf("  TARGET: %s - FLUTTER DESIGN SYSTEM", rec.Project))
	lines = append(lines, border, blank)

	if rec.Screen.Name != "" {
		row("  SCREEN PATTERN: " + rec.Screen.Name)
		if rec.Screen.Sections != "" {
			row("     Sections: " + rec.Screen.Sections)
		}
		if rec.Screen.CTAPlacement != "" {
			row("     CTA: " + rec.Screen.CTAPlacement)
		}
		if rec.Screen.ConversionOptimization != "" {
			wrapped("     ", "Conversion: "+rec.Screen.ConversionOptimization)
		}
		lines = append(lines, blank)
	}

	row("  ARCHITECTURE: " + rec.Pattern.Name)
	row("     Structure: " + rec.Pattern.Architecture)
	row("     State: " + rec.Pattern.StateManagement)
	if len(rec.Pattern.Recommended) > 0 {
		row("     Patterns: " + strings.Join(rec.Pattern.Recommended, ", "))
	}
	lines = append(lines, blank)

	row("  UI STYLE: " + rec.Style.Name)
	if rec.Style.Keywords != "" {
		wrapped("     ", "Keywords: "+rec.Style.Keywords)
	}
	if rec.Style.BestFor != "" {
		wrapped("     ", "Best For: "+rec.Style.BestFor)
	}
	lines = append(lines, blank)

	row("  COLOR PALETTE:")
	row("     Primary:    " + rec.Colors.Primary)
	row("     Secondary:  " + rec.Colors.Secondary)
	row("     CTA:        " + rec.Colors.CTA)
	row("     Background: " + rec.Colors.Background)
	row("     Surface:    " + rec.Colors.Surface)
	row("     Text:       " + rec.Colors.Text)
	if rec.Colors.Notes != "" {
		wrapped("     ", "Notes: "+rec.Colors.Notes)
	}
	if rec.Colors.Strategy != "" {
		wrapped("     ", "Strategy: "+rec.Colors.Strategy)
	}
	lines = append(lines, blank)

	row(fmt.Sprintf("  TYPOGRAPHY: %s / %s", rec.Typography.Heading, rec.Typography.Body))
	if rec.Typography.Mood != "" {
		wrapped("     ", "Mood: "+rec.Typography.Mood)
	}
	if rec.Typography.BestFor != "" {
		wrapped("     ", "Best For: "+rec.Typography.BestFor)
	}
	lines = append(lines, blank)

	if rec.KeyEffects != "" {
		row("  KEY EFFECTS:")
		wrapped("     ", rec.KeyEffects)
		lines = append(lines, blank)
	}
	if rec.ConversionFocus != "" {
		row("  CONVERSION FOCUS:")
		wrapped("     ", rec.ConversionFocus)
		lines = append(lines, blank)
	}
	if len(rec.MustHave) > 0 {
		row("  MUST-HAVE FEATURES:")
		for _, feature := range rec.MustHave {
			row("     * " + feature)
		}
		lines = append(lines, blank)
	}
	if rec.AntiPatterns != "" {
		row("  AVOID (Anti-patterns):")
		wrapped("     ", rec.AntiPatterns)
		lines = append(lines, blank)
	}

	row("  PRE-DELIVERY CHECKLIST:")
	for _, item := range checklist {
		row("     [ ] " + item)
	}
	lines = append(lines, blank, border)

	return strings.Join(lines, "\n")
}
