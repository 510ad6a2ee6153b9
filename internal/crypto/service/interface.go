// Package service provides the field-level encryption primitives: AEAD ciphers,
// the FieldCipher built on top of them, and KMS-backed key loading.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt seals plaintext under a fresh random nonce. The returned ciphertext
	// carries the authentication tag as its last Overhead() bytes.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext (tag appended) using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize is the nonce length in bytes.
	NonceSize() int

	// Overhead is the authentication tag length in bytes.
	Overhead() int
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// FieldCipher encrypts and decrypts individual sensitive string fields.
type FieldCipher interface {
	// Encrypt seals plaintext with a fresh nonce and returns the parts separately.
	Encrypt(plaintext string) (cryptoDomain.EncryptedField, error)

	// Decrypt authenticates and opens field. Any failure is ErrIntegrity and no
	// plaintext is returned.
	Decrypt(field cryptoDomain.EncryptedField) (string, error)
}

// KMSService opens keepers for gocloud.dev secrets URIs.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI. The caller must Close it.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
