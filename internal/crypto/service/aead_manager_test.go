package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	validKey := make([]byte, 32)
	_, err := rand.Read(validKey)
	require.NoError(t, err)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, cryptoDomain.AESGCM)
		require.NoError(t, err)

		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
		assert.Equal(t, 16, cipher.NonceSize())
		assert.Equal(t, 16, cipher.Overhead())
	})

	t.Run("create XChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, cryptoDomain.XChaCha20)
		require.NoError(t, err)

		_, ok := cipher.(*XChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *XChaCha20Poly1305Cipher")
		assert.Equal(t, 24, cipher.NonceSize())
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(validKey, cryptoDomain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	for _, size := range []int{0, 16, 64} {
		_, err := manager.CreateCipher(make([]byte, size), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize, "size %d", size)
	}

	t.Run("cipher layout mismatch", func(t *testing.T) {
		manager := &AEADManagerService{suites: map[cryptoDomain.Algorithm]aeadSuite{
			cryptoDomain.AESGCM: {
				newCipher: func(key []byte) (AEAD, error) { return NewXChaCha20Poly1305(key) },
				nonceSize: cryptoDomain.AESGCMNonceSize,
			},
		}}

		cipher, err := manager.CreateCipher(validKey, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
		assert.ErrorContains(t, err, "nonce=24")
		assert.Nil(t, cipher)
	})

	t.Run("ciphers are keyed independently", func(t *testing.T) {
		otherKey := make([]byte, 32)
		_, err := rand.Read(otherKey)
		require.NoError(t, err)

		for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.XChaCha20} {
			sealer, err := manager.CreateCipher(validKey, alg)
			require.NoError(t, err)
			opener, err := manager.CreateCipher(otherKey, alg)
			require.NoError(t, err)

			ciphertext, nonce, err := sealer.Encrypt([]byte("raj@example.com"), nil)
			require.NoError(t, err)
			_, err = opener.Decrypt(ciphertext, nonce, nil)
			assert.Error(t, err, alg)
		}
	})

	t.Run("nil key", func(t *testing.T) {
		_, err := manager.CreateCipher(nil, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}
