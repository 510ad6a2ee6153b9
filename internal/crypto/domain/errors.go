package domain

import (
	"github.com/allisson/resumevault/internal/errors"
)

// Cryptographic error definitions.
var (
	// ErrUnsupportedAlgorithm indicates the configured field cipher algorithm is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the field cipher key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrSigningSecretEmpty indicates the token signing secret is missing.
	ErrSigningSecretEmpty = errors.Wrap(errors.ErrInvalidInput, "signing secret is empty")

	// ErrIntegrity indicates an encrypted field could not be authenticated.
	//
	// It covers wrong keys, tampered ciphertext, nonce or tag, malformed hex and
	// wrong component lengths alike. The cause is never disclosed. It does not
	// wrap an HTTP-mapped class; callers decide per record what to do with it.
	ErrIntegrity = errors.New("integrity check failed")
)
