package render

import (
	"fmt"
	"strings"
	"time"

	"designkb/internal/domain"
)

// PageOverrideFile renders one screen's override document. It only lists
// deviations; everything else defers to the master file.
func PageOverrideFile(ov domain.PageOverride, project string, generated time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Screen Overrides\n\n", pageTitle(ov.Page))
	fmt.Fprintf(&b, "> **PROJECT:** %s\n", project)
	fmt.Fprintf(&b, "> **Generated:** %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "> **Screen Type:** %s\n\n", ov.PageType)
	b.WriteString("> **IMPORTANT:** Rules in this file **override** the Master file (`design-system/MASTER.md`).\n")
	b.WriteString("> Only deviations from the Master are documented here. For all other rules, refer to the Master.\n\n")
	b.WriteString("---\n\n")

	b.WriteString("## Screen-Specific Rules\n\n")

	b.WriteString("### Layout Overrides\n\n")
	if len(ov.Layout) > 0 {
		for _, field := range ov.Layout {
			fmt.Fprintf(&b, "- **%s:** %s\n", field.Name, field.Value)
		}
	} else {
		b.WriteString("- No overrides: use Master layout\n")
	}
	b.WriteString("\n")

	b.WriteString("### Recommended Widgets\n\n")
	if len(ov.Widgets) > 0 {
		for _, widget := range ov.Widgets {
			fmt.Fprintf(&b, "- %s\n", widget)
		}
	} else {
		b.WriteString("- Use standard widgets from Master\n")
	}
	b.WriteString("\n")

	b.WriteString("### State Management\n\n")
	if len(ov.State) > 0 {
		for _, field := range ov.State {
			fmt.Fprintf(&b, "- **%s:** %s\n", field.Name, field.Value)
		}
	} else {
		b.WriteString("- No overrides: use Master state management\n")
	}
	b.WriteString("\n")

	b.WriteString("---\n\n## Recommendations\n\n")
	for _, rec := range ov.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// pageTitle turns a page slug like "user-profile" into "User Profile".
func pageTitle(page string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(page)
	words := strings.Fields(replaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
