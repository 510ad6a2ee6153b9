package domain

import (
	"encoding/base64"
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// KeyMaterial holds the process-wide field cipher key and token signing secret.
//
// It is built once at startup and never mutated afterwards, so it can be shared
// by every request goroutine without locking. Accessors return copies. Neither
// fmt nor slog will ever print the secrets.
type KeyMaterial struct {
	cipherKey     [KeySize]byte
	signingSecret []byte
}

// NewKeyMaterial copies cipherKey and signingSecret into a new KeyMaterial.
// The cipher key must be exactly 32 bytes and the signing secret non-empty.
func NewKeyMaterial(cipherKey, signingSecret []byte) (*KeyMaterial, error) {
	if len(cipherKey) != KeySize {
		return nil, fmt.Errorf("%w: cipher key must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(cipherKey))
	}
	if len(signingSecret) == 0 {
		return nil, ErrSigningSecretEmpty
	}

	km := &KeyMaterial{signingSecret: make([]byte, len(signingSecret))}
	copy(km.cipherKey[:], cipherKey)
	copy(km.signingSecret, signingSecret)
	return km, nil
}

// CipherKey returns a copy of the 32-byte field cipher key.
func (k *KeyMaterial) CipherKey() []byte {
	key := make([]byte, KeySize)
	copy(key, k.cipherKey[:])
	return key
}

// SigningSecret returns a copy of the token signing secret.
func (k *KeyMaterial) SigningSecret() []byte {
	secret := make([]byte, len(k.signingSecret))
	copy(secret, k.signingSecret)
	return secret
}

// Close zeroes the key bytes. The KeyMaterial must not be used afterwards.
func (k *KeyMaterial) Close() {
	Zero(k.cipherKey[:])
	Zero(k.signingSecret)
	k.signingSecret = nil
}

// String implements fmt.Stringer.
func (k *KeyMaterial) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not dump the fields.
func (k *KeyMaterial) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (k *KeyMaterial) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// ParseEncryptionKey decodes ENCRYPTION_KEY into raw key bytes.
//
// Accepted forms are standard base64 of exactly 32 bytes, or a raw string of
// exactly 32 bytes. The base64 form takes precedence.
func ParseEncryptionKey(raw string) ([]byte, error) {
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil && len(decoded) == KeySize {
		return decoded, nil
	}
	if len(raw) == KeySize {
		return []byte(raw), nil
	}
	return nil, fmt.Errorf("%w: encryption key must be 32 bytes (raw or base64 encoded)", ErrInvalidKeySize)
}
