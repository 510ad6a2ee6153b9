package commands

import (
	"fmt"
	"io"
)

// signingSecretSize is the HS256 secret length in bytes.
const signingSecretSize = 32

// RunCreateSigningSecret prints a random JWT_SECRET line.
func RunCreateSigningSecret(writer io.Writer) error {
	secret, err := randomBase64(signingSecretSize)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(writer, "JWT_SECRET=\"%s\"\n", secret)
	return nil
}
