package domain

// Algorithm represents the AEAD used to protect sensitive fields.
//
// Both algorithms take a 256-bit key and produce a 16-byte authentication tag.
// Use AESGCM unless the deployment lacks AES hardware acceleration.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM with a 16-byte nonce.
	AESGCM Algorithm = "aes-gcm"

	// XChaCha20 represents XChaCha20-Poly1305 with a 24-byte nonce.
	XChaCha20 Algorithm = "xchacha20-poly1305"
)

const (
	// KeySize is the required length in bytes of the field cipher key.
	KeySize = 32

	// AESGCMNonceSize is the nonce length used by the AES-256-GCM field cipher.
	AESGCMNonceSize = 16

	// TagSize is the authentication tag length of every supported algorithm.
	TagSize = 16
)

// ParseAlgorithm converts a configuration value to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case XChaCha20:
		return XChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
