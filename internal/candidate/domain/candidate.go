// Package domain defines the candidate records produced from analyzed resumes.
//
// Identity fields (name and email) only ever exist in plaintext inside a
// Candidate. A StoredCandidate carries them as encrypted fields and is the
// only shape handed to persistence.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

// Education is the highest degree reported on a resume.
type Education struct {
	Degree      string `json:"degree"`
	Branch      string `json:"branch"`
	Institution string `json:"institution"`
	Year        Year   `json:"year"`
}

// Experience is the current or most recent position reported on a resume.
type Experience struct {
	JobTitle  string `json:"job_title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Profile groups the structured, non-identifying fields of a candidate.
// These are stored in plaintext.
type Profile struct {
	Education  Education  `json:"education"`
	Experience Experience `json:"experience"`
	Skills     []string   `json:"skills"`
	Summary    string     `json:"summary"`
}

// Candidate is the plaintext view of a candidate record.
type Candidate struct {
	ID    uuid.UUID
	Name  string
	Email string
	Profile
	CreatedAt time.Time
}

// StoredCandidate is the storage view of a candidate record.
type StoredCandidate struct {
	ID    uuid.UUID
	Name  cryptoDomain.EncryptedField
	Email cryptoDomain.EncryptedField
	Profile
	CreatedAt time.Time
}
