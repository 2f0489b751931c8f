package port

import "designkb/internal/domain"

// RuleSource provides the category-keyed reasoning table.
type RuleSource interface {
	Rules() []domain.ReasoningRule
}
