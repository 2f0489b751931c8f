// Package render turns a design-system recommendation into its text
// representations: markdown, an ASCII summary box, and a master guideline
// file. All renderers are pure string producers.
package render

import "strings"

var checklist = []string{
	"const constructors for immutable widgets",
	"Keys for lists and animated widgets",
	"Proper widget decomposition (no God widgets)",
	"Responsive: 375px, 768px, 1024px breakpoints",
	"Accessibility: Semantics labels, touch targets >= 48px",
	"Performance: ListView.builder for long lists",
	"Error handling: proper error/loading states",
}

// wrap splits text into lines of at most width runes, breaking on spaces.
// Words longer than the width land on their own line untruncated.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// splitPlus breaks a "A + B + C" aggregate value into trimmed items.
func splitPlus(value string) []string {
	var items []string
	for _, part := range strings.Split(value, "+") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// flutterColor renders a hex value like #2563EB as a Flutter color literal.
func flutterColor(hex string) string {
	return "Color(0xFF" + strings.ToUpper(strings.TrimPrefix(hex, "#")) + ")"
}
