package port

import "designkb/internal/domain"

// RecommendationStore persists generated recommendations by project.
type RecommendationStore interface {
	Put(project string, rec domain.Recommendation) error

	Get(project string) (domain.Recommendation, error)

	List() ([]string, error)

	Close() error
}
