package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// LoadKeyMaterial builds the process KeyMaterial from configuration values.
//
// Without kmsKeyURI, encryptionKey is parsed with ParseEncryptionKey. With it,
// encryptionKey must be the base64 KMS ciphertext of a 32-byte key and is
// unwrapped through the keeper. Intermediate key bytes are zeroed.
func LoadKeyMaterial(
	ctx context.Context,
	kms KMSService,
	encryptionKey, kmsKeyURI, signingSecret string,
) (*cryptoDomain.KeyMaterial, error) {
	var (
		key []byte
		err error
	)

	if kmsKeyURI == "" {
		key, err = cryptoDomain.ParseEncryptionKey(encryptionKey)
		if err != nil {
			return nil, err
		}
	} else {
		key, err = unwrapKey(ctx, kms, encryptionKey, kmsKeyURI)
		if err != nil {
			return nil, err
		}
	}
	defer cryptoDomain.Zero(key)

	return cryptoDomain.NewKeyMaterial(key, []byte(signingSecret))
}

func unwrapKey(ctx context.Context, kms KMSService, encoded, keyURI string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wrapped encryption key: %w", err)
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap encryption key: %w", err)
	}
	if len(key) != cryptoDomain.KeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("%w: unwrapped key is %d bytes", cryptoDomain.ErrInvalidKeySize, len(key))
	}
	return key, nil
}

// WrapKey encrypts a raw key with the keeper at keyURI and returns base64 ciphertext.
func WrapKey(ctx context.Context, kms KMSService, keyURI string, key []byte) (string, error) {
	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to wrap encryption key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
