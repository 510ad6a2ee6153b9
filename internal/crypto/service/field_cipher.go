package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

// FieldCipherService implements FieldCipher on top of an AEAD.
//
// No associated data is bound, so a sealed field may be moved between records.
// Stored rows from earlier deployments were written the same way.
type FieldCipherService struct {
	aead AEAD
}

// NewFieldCipher builds a FieldCipher keyed with the cipher key from km.
// The key copy handed to the AEAD constructor is zeroed before returning.
func NewFieldCipher(
	km *cryptoDomain.KeyMaterial,
	alg cryptoDomain.Algorithm,
	manager AEADManager,
) (*FieldCipherService, error) {
	key := km.CipherKey()
	defer cryptoDomain.Zero(key)

	aead, err := manager.CreateCipher(key, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}
	return &FieldCipherService{aead: aead}, nil
}

// Encrypt seals plaintext and splits the tag off the sealed output.
func (f *FieldCipherService) Encrypt(plaintext string) (cryptoDomain.EncryptedField, error) {
	sealed, nonce, err := f.aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return cryptoDomain.EncryptedField{}, err
	}

	split := len(sealed) - f.aead.Overhead()
	return cryptoDomain.EncryptedField{
		Ciphertext: sealed[:split:split],
		Nonce:      nonce,
		AuthTag:    sealed[split:],
	}, nil
}

// Decrypt rejoins ciphertext and tag and opens them. Wrong lengths, a wrong key
// and any modified byte all yield ErrIntegrity.
func (f *FieldCipherService) Decrypt(field cryptoDomain.EncryptedField) (string, error) {
	if len(field.Nonce) != f.aead.NonceSize() || len(field.AuthTag) != f.aead.Overhead() {
		return "", cryptoDomain.ErrIntegrity
	}

	sealed := make([]byte, 0, len(field.Ciphertext)+len(field.AuthTag))
	sealed = append(sealed, field.Ciphertext...)
	sealed = append(sealed, field.AuthTag...)

	plaintext, err := f.aead.Decrypt(sealed, field.Nonce, nil)
	if err != nil {
		return "", cryptoDomain.ErrIntegrity
	}
	return string(plaintext), nil
}
