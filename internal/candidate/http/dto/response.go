package dto

import (
	"encoding/hex"
	"time"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
)

// AnalyzeResumeResponse describes a newly stored candidate. Name and email are
// the hex ciphertext of the stored fields, never plaintext.
type AnalyzeResumeResponse struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Email      string                     `json:"email"`
	Education  candidateDomain.Education  `json:"education"`
	Experience candidateDomain.Experience `json:"experience"`
	Skills     []string                   `json:"skills"`
	Summary    string                     `json:"summary"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// CandidateResponse is a decrypted candidate returned by search.
type CandidateResponse struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Email      string                     `json:"email"`
	Education  candidateDomain.Education  `json:"education"`
	Experience candidateDomain.Experience `json:"experience"`
	Skills     []string                   `json:"skills"`
	Summary    string                     `json:"summary"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// MapStoredCandidateToAnalyzeResponse converts a stored candidate to its API response.
func MapStoredCandidateToAnalyzeResponse(stored *candidateDomain.StoredCandidate) AnalyzeResumeResponse {
	return AnalyzeResumeResponse{
		ID:         stored.ID.String(),
		Name:       hex.EncodeToString(stored.Name.Ciphertext),
		Email:      hex.EncodeToString(stored.Email.Ciphertext),
		Education:  stored.Education,
		Experience: stored.Experience,
		Skills:     nonNilSkills(stored.Skills),
		Summary:    stored.Summary,
		CreatedAt:  stored.CreatedAt,
	}
}

// MapCandidatesToResponse converts decrypted candidates to their API response.
func MapCandidatesToResponse(candidates []*candidateDomain.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, CandidateResponse{
			ID:         c.ID.String(),
			Name:       c.Name,
			Email:      c.Email,
			Education:  c.Education,
			Experience: c.Experience,
			Skills:     nonNilSkills(c.Skills),
			Summary:    c.Summary,
			CreatedAt:  c.CreatedAt,
		})
	}
	return out
}

func nonNilSkills(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
