package domain

import (
	"github.com/allisson/resumevault/internal/errors"
)

// Candidate-specific error definitions.
var (
	// ErrSearchTermRequired indicates an empty or blank name search term.
	ErrSearchTermRequired = errors.Wrap(errors.ErrInvalidInput, "search term is required")

	// ErrNoMatchingCandidates indicates a search that matched no readable record.
	ErrNoMatchingCandidates = errors.Wrap(errors.ErrNotFound, "no matching candidates found")

	// ErrMissingIdentity indicates an extracted profile without a name or email.
	ErrMissingIdentity = errors.Wrap(errors.ErrInvalidInput, "extracted profile is missing name or email")

	// ErrInvalidYear indicates a year value that is neither a number nor a numeric string.
	ErrInvalidYear = errors.New("invalid year")
)
