package port

import "designkb/internal/domain"

// Ranker scores a free-text query against every record of one domain's
// dataset. Implementations are immutable after construction and safe for
// concurrent use.
type Ranker interface {
	// Score returns one result per record, sorted descending by score with
	// ties kept in record order.
	Score(query string) []domain.ScoredResult

	// Len returns the number of indexed records.
	Len() int
}
