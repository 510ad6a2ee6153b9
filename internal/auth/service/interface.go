// Package service provides the stateless authentication services: signed
// bearer tokens and the configured login credential check.
package service

import (
	"time"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after the configured TTL.
	Issue(subject string) (plainToken string, expiresAt time.Time, err error)

	// Verify checks the signature and that the current time is before expiry.
	// Returns ErrTokenExpired or ErrTokenInvalid, both of which wrap ErrUnauthorized.
	Verify(plainToken string) (*authDomain.Token, error)
}

// CredentialService checks login credentials against the configured account.
type CredentialService interface {
	// Matches reports whether username and password both match. The password
	// check runs even when the username is wrong.
	Matches(username, password string) bool
}
