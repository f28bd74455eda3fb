package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/hrvault/internal/crypto/domain"
	cryptoService "github.com/allisson/hrvault/internal/crypto/service"
)

// RunCreateFieldKey generates a cryptographically secure 32-byte field
// encryption key. Key material is zeroed from memory after encoding.
//
// Without a KMS key URI, the key is printed as FIELD_KEY for direct use via
// the environment. With a KMS key URI, the key is wrapped by the keeper and
// printed as FIELD_KEY_WRAPPED plus KMS_KEY_URI, so the raw key never touches
// the environment of the running server.
//
// Security: never use the localsecrets (base64key://) provider in production.
func RunCreateFieldKey(ctx context.Context, kmsKeyURI string, kms cryptoService.KMSService, out io.Writer) error {
	fieldKey := make([]byte, cryptoDomain.FieldKeySize)
	if _, err := rand.Read(fieldKey); err != nil {
		return fmt.Errorf("failed to generate field key: %w", err)
	}
	defer cryptoDomain.Zero(fieldKey)

	if kmsKeyURI == "" {
		fmt.Fprintln(out, "# Field Key Configuration (plain mode)")
		fmt.Fprintln(out, "# Copy this environment variable to your .env file or secrets manager")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "FIELD_KEY=\"%s\"\n", base64.StdEncoding.EncodeToString(fieldKey))
		return nil
	}

	keeperInterface, err := kms.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeperInterface.Close(); closeErr != nil {
			fmt.Fprintf(out, "# Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	// The keeper interface only carries Decrypt for the server unwrap path;
	// wrapping needs the Encrypt method of the concrete keeper.
	keeper, ok := keeperInterface.(interface {
		Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	})
	if !ok {
		return fmt.Errorf("KMS keeper does not support encryption")
	}

	ciphertext, err := keeper.Encrypt(ctx, fieldKey)
	if err != nil {
		return fmt.Errorf("failed to wrap field key with KMS: %w", err)
	}

	fmt.Fprintln(out, "# Field Key Configuration (KMS mode)")
	fmt.Fprintln(out, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	fmt.Fprintf(out, "FIELD_KEY_WRAPPED=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))
	return nil
}
