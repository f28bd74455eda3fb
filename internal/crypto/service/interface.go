// Package service provides the field encryption and search hashing services.
package service

// FieldVault provides authenticated encryption for sensitive field values.
//
// Every Encrypt call generates a fresh random IV, so encrypting the same
// plaintext twice yields two different blobs; two employees sharing a
// digit-identical field never produce matching ciphertexts. Implementations
// are stateless apart from read-only access to the immutable field key and
// are safe for concurrent use.
type FieldVault interface {
	// Encrypt encrypts plaintext and returns the iv:tag:ciphertext hex blob.
	Encrypt(plaintext string) (string, error)

	// Decrypt parses and decrypts a blob, returning the original plaintext.
	// Returns ErrMalformedCiphertext for structural anomalies and
	// ErrCiphertextAuthentication for tag verification failures.
	Decrypt(blob string) (string, error)
}

// SearchHasher computes the deterministic digest persisted next to each
// encrypted column. Ciphertext cannot be queried by equality, so write paths
// populate the sidecar and query paths recompute the same digest for lookups.
//
// Equal case-normalized inputs always yield an identical digest. The sidecar
// is an indexing aid, not a security boundary.
type SearchHasher interface {
	// Hash returns the hex-encoded digest of the case-folded plaintext.
	Hash(plaintext string) string
}
