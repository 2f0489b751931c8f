// Package rules loads the category-keyed reasoning table consumed by the
// recommendation aggregator.
package rules

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"designkb/internal/domain"
)

// Column names of the reasoning CSV.
const (
	colCategory       = "App_Category"
	colPattern        = "Recommended_Pattern"
	colStylePriority  = "Style_Priority"
	colColorMood      = "Color_Mood"
	colTypographyMood = "Typography_Mood"
	colKeyEffects     = "Key_Effects"
	colAntiPatterns   = "Anti_Patterns"
	colDecisionRules  = "Decision_Rules"
	colSeverity       = "Severity"
)

const mustHavePrefix = "must_have"

// CSVSource holds reasoning rules loaded from a CSV file.
type CSVSource struct {
	rules []domain.ReasoningRule
}

// LoadFile reads the reasoning table. A missing file yields an empty
// source, matching the degenerate-dataset behavior of the search path.
func LoadFile(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CSVSource{}, nil
		}
		return nil, fmt.Errorf("failed to open reasoning rules: %w", err)
	}
	defer f.Close()

	src, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reasoning rules: %w", err)
	}
	return src, nil
}

func load(r io.Reader) (*CSVSource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &CSVSource{}, nil
		}
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	src := &CSVSource{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		src.rules = append(src.rules, domain.ReasoningRule{
			Category:       get(row, colCategory),
			Pattern:        get(row, colPattern),
			StylePriority:  SplitPriorities(get(row, colStylePriority)),
			ColorMood:      get(row, colColorMood),
			TypographyMood: get(row, colTypographyMood),
			KeyEffects:     get(row, colKeyEffects),
			AntiPatterns:   get(row, colAntiPatterns),
			DecisionRules:  ParseDecisionRules(get(row, colDecisionRules)),
			Severity:       get(row, colSeverity),
		})
	}

	return src, nil
}

// Rules returns the loaded reasoning rules in file order.
func (s *CSVSource) Rules() []domain.ReasoningRule {
	return s.rules
}

// SplitPriorities splits a "+"-delimited style-priority string, trimming
// whitespace and dropping empty entries.
func SplitPriorities(raw string) []string {
	var priorities []string
	for _, p := range strings.Split(raw, "+") {
		p = strings.TrimSpace(p)
		if p != "" {
			priorities = append(priorities, p)
		}
	}
	return priorities
}

// ParseDecisionRules decodes the JSON decision-rule payload into a tagged
// list, preserving key order. Malformed payloads yield nil; bad rule data
// never fails a recommendation.
func ParseDecisionRules(raw string) []domain.DecisionRule {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var parsed []domain.DecisionRule
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil
		}

		kind := domain.DecisionOther
		if strings.HasPrefix(key, mustHavePrefix) {
			kind = domain.DecisionMustHave
		}
		parsed = append(parsed, domain.DecisionRule{
			Kind:  kind,
			Key:   key,
			Value: rawToString(value),
		})
	}

	if tok, err := dec.Token(); err != nil {
		return nil
	} else if delim, ok := tok.(json.Delim); !ok || delim != '}' {
		return nil
	}

	return parsed
}

// rawToString renders a JSON value as display text: strings unquoted,
// everything else as its compact JSON form.
func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
