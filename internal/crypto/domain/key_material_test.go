package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyMaterial(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	secret := []byte("signing-secret")

	t.Run("valid", func(t *testing.T) {
		km, err := NewKeyMaterial(key, secret)
		require.NoError(t, err)
		assert.Equal(t, key, km.CipherKey())
		assert.Equal(t, secret, km.SigningSecret())
	})

	t.Run("inputs are copied", func(t *testing.T) {
		k := bytes.Clone(key)
		s := bytes.Clone(secret)
		km, err := NewKeyMaterial(k, s)
		require.NoError(t, err)

		k[0] = 0
		s[0] = 0
		assert.Equal(t, key, km.CipherKey())
		assert.Equal(t, secret, km.SigningSecret())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		km, err := NewKeyMaterial(key, secret)
		require.NoError(t, err)

		got := km.CipherKey()
		got[0] = 0
		assert.Equal(t, key, km.CipherKey())
	})

	t.Run("short key", func(t *testing.T) {
		_, err := NewKeyMaterial(key[:16], secret)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("empty signing secret", func(t *testing.T) {
		_, err := NewKeyMaterial(key, nil)
		assert.ErrorIs(t, err, ErrSigningSecretEmpty)
	})
}

func TestKeyMaterial_Redaction(t *testing.T) {
	km, err := NewKeyMaterial([]byte("abcdefghijklmnopqrstuvwxyz012345"), []byte("super-secret"))
	require.NoError(t, err)

	for _, format := range []string{"%v", "%+v", "%#v", "%s"} {
		out := fmt.Sprintf(format, km)
		assert.NotContains(t, out, "super-secret", format)
		assert.NotContains(t, out, "abcdefghij", format)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("loaded", slog.Any("keys", km))
	assert.Contains(t, buf.String(), "[REDACTED]")
	assert.NotContains(t, buf.String(), "super-secret")
}

func TestKeyMaterial_Close(t *testing.T) {
	km, err := NewKeyMaterial(bytes.Repeat([]byte{1}, KeySize), []byte("secret"))
	require.NoError(t, err)

	km.Close()
	assert.Equal(t, make([]byte, KeySize), km.CipherKey())
	assert.Empty(t, km.SigningSecret())
}

func TestParseEncryptionKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, KeySize)

	t.Run("base64", func(t *testing.T) {
		key, err := ParseEncryptionKey(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("raw 32 characters", func(t *testing.T) {
		key, err := ParseEncryptionKey("12345678901234567890123456789012")
		require.NoError(t, err)
		assert.Equal(t, []byte("12345678901234567890123456789012"), key)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseEncryptionKey("too-short")
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("base64 of wrong length", func(t *testing.T) {
		_, err := ParseEncryptionKey(base64.StdEncoding.EncodeToString(raw[:16]))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("aes-gcm")
	require.NoError(t, err)
	assert.Equal(t, AESGCM, alg)

	alg, err = ParseAlgorithm("xchacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, XChaCha20, alg)

	_, err = ParseAlgorithm("rot13")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestEncryptedField_EncodeDecode(t *testing.T) {
	field := EncryptedField{
		Ciphertext: []byte{0xde, 0xad},
		Nonce:      bytes.Repeat([]byte{0x01}, AESGCMNonceSize),
		AuthTag:    bytes.Repeat([]byte{0x02}, TagSize),
	}

	encoded := field.Encode()
	assert.Equal(t, "dead", encoded.EncryptedData)
	assert.Len(t, encoded.IV, AESGCMNonceSize*2)
	assert.Len(t, encoded.AuthTag, TagSize*2)

	decoded, err := encoded.Decode()
	require.NoError(t, err)
	assert.Equal(t, field, decoded)

	for _, bad := range []EncodedField{
		{EncryptedData: "zz", IV: encoded.IV, AuthTag: encoded.AuthTag},
		{EncryptedData: "dead", IV: "0", AuthTag: encoded.AuthTag},
		{EncryptedData: "dead", IV: encoded.IV, AuthTag: "not-hex"},
	} {
		_, err := bad.Decode()
		assert.ErrorIs(t, err, ErrIntegrity)
	}
}
