package service

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
)

// aeadSuite binds an algorithm to its constructor and to the component sizes
// persisted by the record layout.
type aeadSuite struct {
	newCipher func(key []byte) (AEAD, error)
	nonceSize int
}

func defaultSuites() map[cryptoDomain.Algorithm]aeadSuite {
	return map[cryptoDomain.Algorithm]aeadSuite{
		cryptoDomain.AESGCM: {
			newCipher: func(key []byte) (AEAD, error) { return NewAESGCM(key) },
			nonceSize: cryptoDomain.AESGCMNonceSize,
		},
		cryptoDomain.XChaCha20: {
			newCipher: func(key []byte) (AEAD, error) { return NewXChaCha20Poly1305(key) },
			nonceSize: chacha20poly1305.NonceSizeX,
		},
	}
}

// AEADManagerService builds field ciphers for the supported algorithms.
type AEADManagerService struct {
	suites map[cryptoDomain.Algorithm]aeadSuite
}

// NewAEADManager creates an AEADManagerService for AES-256-GCM and XChaCha20-Poly1305.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{suites: defaultSuites()}
}

// CreateCipher returns the AEAD for alg keyed with key.
//
// The key must be KeySize bytes. A cipher whose nonce or tag size differs from
// what stored records carry is refused, so records written under one build stay
// readable under the next.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	suite, ok := am.suites[alg]
	if !ok {
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	aead, err := suite.newCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", alg, err)
	}

	if aead.NonceSize() != suite.nonceSize || aead.Overhead() != cryptoDomain.TagSize {
		return nil, fmt.Errorf(
			"%w: %s cipher layout is nonce=%d tag=%d, records use nonce=%d tag=%d",
			cryptoDomain.ErrUnsupportedAlgorithm,
			alg,
			aead.NonceSize(),
			aead.Overhead(),
			suite.nonceSize,
			cryptoDomain.TagSize,
		)
	}

	return aead, nil
}
