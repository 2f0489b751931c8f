package rules

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"designkb/internal/domain"
)

const sampleCSV = `App_Category,Recommended_Pattern,Style_Priority,Color_Mood,Typography_Mood,Key_Effects,Anti_Patterns,Decision_Rules,Severity
Fintech/Banking,Clean Architecture + BLoC,Minimalism + Flat Design,Professional,Clean,Subtle transitions,Skeuomorphism + Heavy gradients,"{""must_have"": ""Biometric login"", ""must_have_2"": ""Transaction history"", ""prefer"": ""Dark mode""}",HIGH
E-commerce,MVVM + Provider,Bold Typography,Vibrant,Friendly,Parallax scrolling,Cluttered grids,not-json,MEDIUM
`

func loadSample(t *testing.T) *CSVSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ui-reasoning.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return src
}

func TestLoadFile_ParsesRules(t *testing.T) {
	src := loadSample(t)

	rules := src.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	fintech := rules[0]
	if fintech.Category != "Fintech/Banking" {
		t.Errorf("Category = %q", fintech.Category)
	}
	if !reflect.DeepEqual(fintech.StylePriority, []string{"Minimalism", "Flat Design"}) {
		t.Errorf("StylePriority = %v", fintech.StylePriority)
	}
	if fintech.Severity != "HIGH" {
		t.Errorf("Severity = %q", fintech.Severity)
	}
}

func TestDecisionRules_TaggedAndOrdered(t *testing.T) {
	src := loadSample(t)

	rules := src.Rules()[0].DecisionRules
	if len(rules) != 3 {
		t.Fatalf("expected 3 decision rules, got %d", len(rules))
	}

	wantKeys := []string{"must_have", "must_have_2", "prefer"}
	for i, key := range wantKeys {
		if rules[i].Key != key {
			t.Errorf("rule %d key = %q, want %q", i, rules[i].Key, key)
		}
	}
	if rules[0].Kind != domain.DecisionMustHave || rules[1].Kind != domain.DecisionMustHave {
		t.Error("must_have-prefixed keys should be tagged must-have")
	}
	if rules[2].Kind != domain.DecisionOther {
		t.Error("non-must_have key should be tagged other")
	}

	features := src.Rules()[0].MustHaveFeatures()
	want := []string{"Biometric login", "Transaction history"}
	if !reflect.DeepEqual(features, want) {
		t.Errorf("MustHaveFeatures = %v, want %v", features, want)
	}
}

func TestDecisionRules_MalformedIsEmpty(t *testing.T) {
	src := loadSample(t)

	ecommerce := src.Rules()[1]
	if ecommerce.DecisionRules != nil {
		t.Errorf("malformed payload should parse to nil, got %v", ecommerce.DecisionRules)
	}
	if features := ecommerce.MustHaveFeatures(); features != nil {
		t.Errorf("expected no features, got %v", features)
	}
}

func TestParseDecisionRules_NonStringValues(t *testing.T) {
	rules := ParseDecisionRules(`{"must_have": ["offline mode", "sync"], "max_taps": 3}`)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Value != `["offline mode", "sync"]` {
		t.Errorf("array value = %q", rules[0].Value)
	}
	if rules[1].Value != "3" {
		t.Errorf("number value = %q", rules[1].Value)
	}
}

func TestParseDecisionRules_Malformed(t *testing.T) {
	cases := []string{"", "   ", "null", "[]", `"just a string"`, `{"unterminated": `}
	for _, raw := range cases {
		if got := ParseDecisionRules(raw); got != nil {
			t.Errorf("ParseDecisionRules(%q) = %v, want nil", raw, got)
		}
	}
}

func TestSplitPriorities(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Minimalism + Flat Design", []string{"Minimalism", "Flat Design"}},
		{"Glassmorphism", []string{"Glassmorphism"}},
		{" + ", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := SplitPriorities(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitPriorities(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	src, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if len(src.Rules()) != 0 {
		t.Errorf("expected empty source, got %d rules", len(src.Rules()))
	}
}
