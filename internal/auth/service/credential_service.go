package service

import (
	"crypto/subtle"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/resumevault/internal/errors"
)

// credentialService holds the configured account with the password kept
// only as an Argon2id hash.
type credentialService struct {
	username     []byte
	passwordHash string
	hasher       *pwdhash.PasswordHasher
}

// NewCredentialService hashes password with the Moderate Argon2id policy and
// returns a CredentialService for the single configured account.
func NewCredentialService(username, password string) (CredentialService, error) {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	hash, err := hasher.Hash([]byte(password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	return &credentialService{
		username:     []byte(username),
		passwordHash: hash,
		hasher:       hasher,
	}, nil
}

func (s *credentialService) Matches(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), s.username) == 1

	passOK, err := s.hasher.Verify([]byte(password), s.passwordHash)
	if err != nil {
		return false
	}
	return userOK && passOK
}
