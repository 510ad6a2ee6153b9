// Package usecase implements resume analysis and candidate search. It wires
// the document collaborators, the record codec and the candidate repository.
package usecase

import (
	"context"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
)

// CandidateRepository persists candidate records in their storage shape.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *candidateDomain.StoredCandidate) error
	ListAll(ctx context.Context) ([]*candidateDomain.StoredCandidate, error)
}

// DocumentFetcher downloads a resume document.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TextExtractor turns a PDF document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (string, error)
}

// ProfileExtractor turns resume text into a plaintext candidate. Only Name,
// Email and Profile are populated.
type ProfileExtractor interface {
	Extract(ctx context.Context, resumeText string) (*candidateDomain.Candidate, error)
}

// CandidateUseCase defines the candidate business operations.
type CandidateUseCase interface {
	// Analyze downloads the resume at url, extracts a candidate from it and
	// stores it encrypted. The stored shape is returned.
	Analyze(ctx context.Context, url string) (*candidateDomain.StoredCandidate, error)

	// SearchByName returns the readable candidates whose name contains term,
	// case-insensitively.
	SearchByName(ctx context.Context, term string) ([]*candidateDomain.Candidate, error)
}
