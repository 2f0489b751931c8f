package domain

import "errors"

var (
	// ErrUnknownDomain is returned when a caller names a domain outside the
	// registry.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrUnknownStack is returned when a caller names a stack outside the
	// exclusion table.
	ErrUnknownStack = errors.New("unknown stack")

	// ErrMissingDataset is returned when a requested persisted entry does
	// not exist. Scoring over an absent or empty dataset is not an error;
	// it degrades to an empty result set.
	ErrMissingDataset = errors.New("missing dataset")
)
