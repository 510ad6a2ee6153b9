package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/resumevault/internal/crypto/domain"
	cryptoService "github.com/allisson/resumevault/internal/crypto/service"
)

// RunCreateEncryptionKey generates a 256-bit field encryption key and prints it
// as an ENCRYPTION_KEY line.
//
// With kmsKeyURI the key is wrapped by the KMS keeper and the printed value is
// the base64 KMS ciphertext, followed by the matching KMS_KEY_URI line. For local
// development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunCreateEncryptionKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	key := make([]byte, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(key)

	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	if kmsKeyURI == "" {
		logger.Warn("encryption key generated without KMS, store it in a secrets manager")
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(key))
		return nil
	}

	wrapped, err := cryptoService.WrapKey(ctx, kmsService, kmsKeyURI, key)
	if err != nil {
		return err
	}

	logger.Info("encryption key generated and wrapped with KMS")
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", wrapped)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	return nil
}
