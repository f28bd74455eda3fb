package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/hrvault/internal/crypto/domain"
	apperrors "github.com/allisson/hrvault/internal/errors"
)

// searchHashInfo labels the HKDF derivation so the hashing key can never
// collide with the encryption key even though both come from the field key.
const searchHashInfo = "hrvault/search-hash/v1"

// hmacSearchHasher implements SearchHasher using HMAC-SHA256 over the
// case-folded plaintext, keyed with an HKDF derivation of the field key.
//
// Keying the digest keeps the sidecar column from doubling as an offline
// dictionary of the plaintexts while preserving determinism: equal
// case-normalized inputs always produce the same digest for equality lookups.
type hmacSearchHasher struct {
	key []byte
}

// NewSearchHasher derives the search hashing key from the field key and
// returns a SearchHasher. Safe for concurrent use.
func NewSearchHasher(key *cryptoDomain.FieldKey) (SearchHasher, error) {
	reader := hkdf.New(sha256.New, key.Bytes(), nil, []byte(searchHashInfo))

	derived := make([]byte, sha256.Size)
	if _, err := io.ReadFull(reader, derived); err != nil {
		return nil, apperrors.Wrap(err, "failed to derive search hash key")
	}

	return &hmacSearchHasher{key: derived}, nil
}

// Hash computes the HMAC-SHA256 digest of the case-folded plaintext and
// returns it as a 64-character hex string.
func (h *hmacSearchHasher) Hash(plaintext string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(strings.ToLower(plaintext)))
	return hex.EncodeToString(mac.Sum(nil))
}
