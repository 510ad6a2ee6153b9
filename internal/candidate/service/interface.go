// Package service converts candidate records between their plaintext and
// storage shapes.
package service

import (
	"context"

	"github.com/google/uuid"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
)

// RecordCodec applies field encryption to the identity fields of a candidate.
type RecordCodec interface {
	// ToStorage encrypts name and email; the profile passes through unchanged.
	ToStorage(candidate *candidateDomain.Candidate) (*candidateDomain.StoredCandidate, error)

	// FromStorage decrypts name and email. A record that fails authentication
	// returns cryptoDomain.ErrIntegrity and no plaintext.
	FromStorage(stored *candidateDomain.StoredCandidate) (*candidateDomain.Candidate, error)

	// FromStorageBatch decodes stored records in parallel. Unreadable records are
	// left out of the result and their IDs returned in dropped. Output order
	// follows input order. The only error is ctx cancellation.
	FromStorageBatch(
		ctx context.Context,
		stored []*candidateDomain.StoredCandidate,
	) (decoded []*candidateDomain.Candidate, dropped []uuid.UUID, err error)
}
