package domain

import (
	"github.com/allisson/hrvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. Configuration errors are
// startup-fatal; the remaining errors are mapped to HTTP status codes by
// the error handling layer.
var (
	// ErrKeyNotConfigured indicates no field encryption key was supplied.
	//
	// The field key must be provided via FIELD_KEY or FIELD_KEY_WRAPPED at
	// process start. Startup-fatal, never a per-request error.
	ErrKeyNotConfigured = errors.Wrap(errors.ErrConfiguration, "field key not configured")

	// ErrInvalidKeySize indicates the field encryption key is not exactly 32 bytes.
	//
	// AES-256-GCM requires a 256-bit key. Startup-fatal, never a per-request error.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrMalformedCiphertext indicates a stored blob does not conform to the
	// iv:tag:ciphertext hex triple format.
	//
	// Decryption fails closed on any structural anomaly: wrong segment count,
	// non-hex content, or wrong IV/tag length.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrCiphertextAuthentication indicates authentication tag verification failed.
	//
	// This occurs when the ciphertext or tag has been tampered with, or when a
	// wrong key is used. The specific cause is not disclosed to prevent
	// information leakage. Callers must log the event; silently treating an
	// undecryptable value as empty could mask a tampering incident.
	ErrCiphertextAuthentication = errors.Wrap(errors.ErrInvalidInput, "ciphertext authentication failed")
)
