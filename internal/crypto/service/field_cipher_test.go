package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

func newTestFieldCipher(t *testing.T, key []byte, alg cryptoDomain.Algorithm) *FieldCipherService {
	t.Helper()
	km, err := cryptoDomain.NewKeyMaterial(key, []byte("secret"))
	require.NoError(t, err)
	fc, err := NewFieldCipher(km, alg, NewAEADManager())
	require.NoError(t, err)
	return fc
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.XChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			fc := newTestFieldCipher(t, newTestKey(t), alg)

			for _, plaintext := range []string{"Jane Doe", "", "Zoë Ñúñez 李雷", "jane@example.com"} {
				field, err := fc.Encrypt(plaintext)
				require.NoError(t, err)
				assert.Len(t, field.AuthTag, cryptoDomain.TagSize)
				assert.Len(t, field.Ciphertext, len(plaintext))

				got, err := fc.Decrypt(field)
				require.NoError(t, err)
				assert.Equal(t, plaintext, got)
			}
		})
	}
}

func TestFieldCipher_AESGCMNonceIs16Bytes(t *testing.T) {
	fc := newTestFieldCipher(t, newTestKey(t), cryptoDomain.AESGCM)

	field, err := fc.Encrypt("Jane Doe")
	require.NoError(t, err)
	assert.Len(t, field.Nonce, cryptoDomain.AESGCMNonceSize)

	encoded := field.Encode()
	assert.Len(t, encoded.IV, 32)
	assert.Len(t, encoded.AuthTag, 32)
}

func TestFieldCipher_FreshNoncePerCall(t *testing.T) {
	fc := newTestFieldCipher(t, newTestKey(t), cryptoDomain.AESGCM)

	seen := make(map[string]struct{})
	var last cryptoDomain.EncryptedField
	for i := 0; i < 100; i++ {
		field, err := fc.Encrypt("Jane Doe")
		require.NoError(t, err)

		_, dup := seen[string(field.Nonce)]
		assert.False(t, dup, "nonce reused")
		seen[string(field.Nonce)] = struct{}{}

		if i > 0 {
			assert.NotEqual(t, last.Ciphertext, field.Ciphertext)
		}
		last = field
	}
}

func TestFieldCipher_Tamper(t *testing.T) {
	fc := newTestFieldCipher(t, newTestKey(t), cryptoDomain.AESGCM)
	field, err := fc.Encrypt("Jane Doe")
	require.NoError(t, err)

	flip := func(b []byte, i int) []byte {
		out := bytes.Clone(b)
		out[i] ^= 0x01
		return out
	}

	tests := []struct {
		name  string
		field cryptoDomain.EncryptedField
	}{
		{"ciphertext bit flipped", cryptoDomain.EncryptedField{Ciphertext: flip(field.Ciphertext, 0), Nonce: field.Nonce, AuthTag: field.AuthTag}},
		{"nonce bit flipped", cryptoDomain.EncryptedField{Ciphertext: field.Ciphertext, Nonce: flip(field.Nonce, 3), AuthTag: field.AuthTag}},
		{"tag bit flipped", cryptoDomain.EncryptedField{Ciphertext: field.Ciphertext, Nonce: field.Nonce, AuthTag: flip(field.AuthTag, 15)}},
		{"short nonce", cryptoDomain.EncryptedField{Ciphertext: field.Ciphertext, Nonce: field.Nonce[:12], AuthTag: field.AuthTag}},
		{"short tag", cryptoDomain.EncryptedField{Ciphertext: field.Ciphertext, Nonce: field.Nonce, AuthTag: field.AuthTag[:8]}},
		{"empty field", cryptoDomain.EncryptedField{}},
		{"truncated ciphertext", cryptoDomain.EncryptedField{Ciphertext: field.Ciphertext[:2], Nonce: field.Nonce, AuthTag: field.AuthTag}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fc.Decrypt(tt.field)
			assert.ErrorIs(t, err, cryptoDomain.ErrIntegrity)
			assert.Empty(t, got)
		})
	}
}

func TestFieldCipher_WrongKey(t *testing.T) {
	fc := newTestFieldCipher(t, newTestKey(t), cryptoDomain.AESGCM)
	other := newTestFieldCipher(t, newTestKey(t), cryptoDomain.AESGCM)

	field, err := fc.Encrypt("Jane Doe")
	require.NoError(t, err)

	got, err := other.Decrypt(field)
	assert.ErrorIs(t, err, cryptoDomain.ErrIntegrity)
	assert.Empty(t, got)
}

func TestNewFieldCipher_UnsupportedAlgorithm(t *testing.T) {
	km, err := cryptoDomain.NewKeyMaterial(newTestKey(t), []byte("secret"))
	require.NoError(t, err)

	_, err = NewFieldCipher(km, cryptoDomain.Algorithm("des"), NewAEADManager())
	assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
}
