package domain

import (
	"context"
	"encoding/base64"
	"fmt"
)

// FieldKeySize is the required size in bytes of the field encryption key.
const FieldKeySize = 32

// FieldKey holds the process-wide 256-bit field encryption key.
//
// The key is loaded once at startup and treated as immutable for the process
// lifetime; rotation requires a restart. It must never be logged, serialized
// into error messages, or exposed through diagnostic output. Call Close on
// shutdown to clear the key material from memory.
type FieldKey struct {
	key []byte
}

// NewFieldKey creates a FieldKey from raw key material. The material is copied
// so the caller can zero its own buffer. A key of any length other than exactly
// 32 bytes is a configuration error, fatal at startup rather than per call.
func NewFieldKey(raw []byte) (*FieldKey, error) {
	if len(raw) == 0 {
		return nil, ErrKeyNotConfigured
	}
	if len(raw) != FieldKeySize {
		return nil, fmt.Errorf("%w: field key must be %d bytes, got %d", ErrInvalidKeySize, FieldKeySize, len(raw))
	}

	key := make([]byte, FieldKeySize)
	copy(key, raw)
	return &FieldKey{key: key}, nil
}

// DecodeFieldKey creates a FieldKey from a standard base64 encoding of the raw
// key material. The temporary decoded buffer is zeroed after the key is copied.
func DecodeFieldKey(encoded string) (*FieldKey, error) {
	if encoded == "" {
		return nil, ErrKeyNotConfigured
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 field key: %v", ErrInvalidKeySize, err)
	}
	defer Zero(raw)

	return NewFieldKey(raw)
}

// Bytes returns the raw key material. Callers must treat the slice as
// read-only and must never log or serialize it.
func (k *FieldKey) Bytes() []byte {
	return k.key
}

// Close clears the key material from memory. The key is unusable afterwards.
func (k *FieldKey) Close() {
	Zero(k.key)
	k.key = nil
}

// KMSKeeper unwraps key material through an external key management service.
// *secrets.Keeper from gocloud.dev implements this interface.
type KMSKeeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
