package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
	cryptoService "github.com/allisson/resumevault/internal/crypto/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KeyMaterial returns the field encryption key and token signing secret.
// The key is unwrapped through KMS when KMS_KEY_URI is configured.
func (c *Container) KeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	var err error
	c.keyMaterialInit.Do(func() {
		c.keyMaterial, err = c.initKeyMaterial()
		if err != nil {
			c.initErrors["keyMaterial"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyMaterial"]; exists {
		return nil, storedErr
	}
	return c.keyMaterial, nil
}

// FieldCipher returns the cipher used for name and email fields.
func (c *Container) FieldCipher() (cryptoService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.initErrors["fieldCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// initKeyMaterial validates the configuration and loads the key material.
func (c *Container) initKeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	km, err := cryptoService.LoadKeyMaterial(
		c.ctx,
		c.KMSService(),
		c.config.EncryptionKey,
		c.config.KMSKeyURI,
		c.config.SigningSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load key material: %w", err)
	}
	return km, nil
}

// initFieldCipher creates the field cipher for the configured algorithm.
func (c *Container) initFieldCipher() (cryptoService.FieldCipher, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.FieldCipherAlgorithm)
	if err != nil {
		return nil, err
	}

	km, err := c.KeyMaterial()
	if err != nil {
		return nil, fmt.Errorf("failed to get key material for field cipher: %w", err)
	}

	fieldCipher, err := cryptoService.NewFieldCipher(km, alg, c.AEADManager())
	if err != nil {
		return nil, err
	}
	return fieldCipher, nil
}
