package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/hrvault/internal/crypto/domain"
	apperrors "github.com/allisson/hrvault/internal/errors"
)

// aesFieldVault implements FieldVault using AES-256-GCM with a 16-byte nonce.
//
// The storage format splits the GCM output into its ciphertext and
// authentication tag components so the persisted blob is always the explicit
// iv:tag:ciphertext triple. The nonce size matches the blob format's 16-byte
// IV invariant (GCM's default is 12; the stored format predates this service).
type aesFieldVault struct {
	aead cipher.AEAD
}

// NewFieldVault creates a FieldVault bound to the process-wide field key.
// The key must already be validated (exactly 32 bytes) by the domain layer.
func NewFieldVault(key *cryptoDomain.FieldKey) (FieldVault, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create AES cipher")
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.IVSize)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create GCM")
	}

	return &aesFieldVault{aead: aead}, nil
}

// Encrypt encrypts plaintext with a fresh random 16-byte IV and returns the
// serialized blob. Identical plaintexts produce different blobs on every call.
func (v *aesFieldVault) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, cryptoDomain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", apperrors.Wrap(err, "failed to generate iv")
	}

	// Seal appends the 16-byte tag to the ciphertext; split it back out so
	// the stored blob carries all three components explicitly.
	sealed := v.aead.Seal(nil, iv, []byte(plaintext), nil)
	split := len(sealed) - cryptoDomain.TagSize

	blob := &cryptoDomain.EncryptedBlob{
		IV:         iv,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}
	return blob.String(), nil
}

// Decrypt parses the blob and verifies the authentication tag before
// returning the plaintext. Tag verification failure (tamper or wrong key)
// returns ErrCiphertextAuthentication, never a value.
func (v *aesFieldVault) Decrypt(blob string) (string, error) {
	parsed, err := cryptoDomain.ParseEncryptedBlob(blob)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(parsed.Ciphertext)+cryptoDomain.TagSize)
	sealed = append(sealed, parsed.Ciphertext...)
	sealed = append(sealed, parsed.Tag...)

	plaintext, err := v.aead.Open(nil, parsed.IV, sealed, nil)
	if err != nil {
		// The underlying cause is deliberately not wrapped: it never
		// distinguishes tamper from wrong key, and must not leak key context.
		return "", fmt.Errorf("%w", cryptoDomain.ErrCiphertextAuthentication)
	}

	return string(plaintext), nil
}
