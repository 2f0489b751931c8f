package registry

// Default returns the built-in domain table for the Flutter knowledge
// base. Callers wanting different domains construct their own Registry.
func Default() *Registry {
	return New(defaultDomains(), "widget")
}

func defaultDomains() []DomainConfig {
	return []DomainConfig{
		{
			Name:         "widget",
			File:         "widget.csv",
			SearchFields: []string{"Widget Name", "Category", "Description", "Key Properties", "Usage Context & Pro-Tips"},
			OutputFields: []string{"Widget Name", "Category", "Description", "Key Properties", "Usage Context & Pro-Tips"},
			NameField:    "Widget Name",
			BoostName:    true,
			Keywords:     []string{"widget", "listview", "column", "row", "container", "text", "button", "scaffold", "appbar", "sliver"},
		},
		{
			Name:          "package",
			File:          "package.csv",
			SearchFields:  []string{"pkg_name", "category", "description", "best_practice_snippet", "pro_tip", "alternatives"},
			OutputFields:  []string{"pkg_name", "category", "description", "best_practice_snippet", "pro_tip", "alternatives"},
			NameField:     "pkg_name",
			CategoryField: "category",
			Keywords:      []string{"package", "pub", "dependency", "library", "dio", "http", "riverpod", "bloc", "hive", "isar"},
		},
		{
			Name:         "pattern",
			File:         "patterns.csv",
			SearchFields: []string{"pattern_name", "category", "problem_tags", "description", "key_widgets", "code_snippet", "anti_pattern"},
			OutputFields: []string{"pattern_name", "category", "problem_tags", "description", "key_widgets", "code_snippet", "anti_pattern"},
			NameField:    "pattern_name",
			Keywords:     []string{"pattern", "architecture", "repository", "usecase", "state", "async", "error handling", "offline"},
		},
		{
			Name:         "architect",
			File:         "architect.csv",
			SearchFields: []string{"path_pattern", "layer", "responsibility_description", "allowed_dependencies", "tech_stack_note"},
			OutputFields: []string{"path_pattern", "layer", "responsibility_description", "allowed_dependencies", "tech_stack_note"},
			NameField:    "path_pattern",
			Keywords:     []string{"layer", "folder", "structure", "clean", "feature", "domain", "data", "presentation"},
		},
		{
			Name:         "chart",
			File:         "charts.csv",
			SearchFields: []string{"Data Type", "Keywords", "Best Chart Type", "Secondary Options", "Accessibility Notes"},
			OutputFields: []string{"Data Type", "Keywords", "Best Chart Type", "Secondary Options", "Color Guidance", "Accessibility Notes", "Library Recommendation"},
			NameField:    "Best Chart Type",
			Keywords:     []string{"chart", "graph", "visualization", "bar", "pie", "line", "scatter", "heatmap"},
		},
		{
			Name:         "color",
			File:         "colors.csv",
			SearchFields: []string{"Product Type", "Keywords", "Notes"},
			OutputFields: []string{"Product Type", "Keywords", "Primary (Hex)", "Secondary (Hex)", "CTA (Hex)", "Notes"},
			NameField:    "Product Type",
			Keywords:     []string{"color", "palette", "hex", "theme", "dark mode", "light mode"},
		},
		{
			Name:         "typography",
			File:         "typography.csv",
			SearchFields: []string{"Font Pairing Name", "Category", "Mood/Style Keywords", "Best For", "Heading Font", "Body Font"},
			OutputFields: []string{"Font Pairing Name", "Category", "Heading Font", "Body Font", "Mood/Style Keywords", "Best For", "Google Fonts URL", "Notes"},
			NameField:    "Font Pairing Name",
			Keywords:     []string{"font", "typography", "heading", "text style", "google fonts"},
		},
		{
			Name:         "style",
			File:         "styles.csv",
			SearchFields: []string{"Style Category", "Type", "Keywords", "Best For"},
			OutputFields: []string{"Style Category", "Type", "Keywords", "Primary Colors", "Effects & Animation", "Best For", "Do Not Use For"},
			NameField:    "Style Category",
			Keywords:     []string{"style", "design", "ui", "glassmorphism", "neumorphism", "minimal", "modern"},
		},
		{
			Name:         "ux",
			File:         "ux-guidelines.csv",
			SearchFields: []string{"Category", "Issue", "Platform", "Description", "Do", "Don't"},
			OutputFields: []string{"Category", "Issue", "Platform", "Description", "Do", "Don't"},
			NameField:    "Issue",
			Keywords:     []string{"ux", "usability", "accessibility", "touch", "scroll", "animation", "gesture"},
		},
		{
			Name:         "icon",
			File:         "icons.csv",
			SearchFields: []string{"Category", "Icon Name", "Keywords", "Best For"},
			OutputFields: []string{"Category", "Icon Name", "Keywords", "Library", "Import Code", "Usage", "Best For"},
			NameField:    "Icon Name",
			Keywords:     []string{"icon", "lucide", "material icons", "cupertino"},
		},
		{
			Name:         "landing",
			File:         "landing.csv",
			SearchFields: []string{"Pattern Name", "Keywords", "Section Order", "Conversion Optimization"},
			OutputFields: []string{"Pattern Name", "Keywords", "Section Order", "Primary CTA Placement", "Color Strategy", "Conversion Optimization"},
			NameField:    "Pattern Name",
			Keywords:     []string{"landing", "page", "hero", "cta", "section"},
		},
		{
			Name:         "naming",
			File:         "name_convention.csv",
			SearchFields: []string{"Layer", "File Template", "Class Template", "Example File", "Example Class", "Notes"},
			OutputFields: []string{"Layer", "File Template", "Class Template", "Example File", "Example Class", "Notes"},
			NameField:    "Layer",
			Keywords:     []string{"naming", "convention", "file name", "class name", "snake_case", "pascalcase"},
		},
		{
			Name:         "product",
			File:         "products.csv",
			SearchFields: []string{"Product Type", "Keywords", "Primary Style Recommendation"},
			OutputFields: []string{"Product Type", "Keywords", "Primary Style Recommendation", "Secondary Styles", "Color Palette Focus"},
			NameField:    "Product Type",
			Keywords:     []string{"saas", "ecommerce", "fintech", "healthcare", "education", "food", "travel"},
		},
		{
			Name:         "prompt",
			File:         "prompts.csv",
			SearchFields: []string{"Style Category", "AI Prompt Keywords (Copy-Paste Ready)", "CSS/Technical Keywords"},
			OutputFields: []string{"Style Category", "AI Prompt Keywords (Copy-Paste Ready)", "CSS/Technical Keywords", "Implementation Checklist"},
			NameField:    "Style Category",
			Keywords:     []string{"prompt", "ai", "css", "tailwind", "implementation"},
		},
	}
}
