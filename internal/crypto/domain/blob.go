// Package domain defines field encryption domain models: the encrypted blob
// storage format, the process-wide field key, and cryptographic errors.
package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// IVSize is the size in bytes of the random initialization vector
	// generated for every encryption.
	IVSize = 16

	// TagSize is the size in bytes of the GCM authentication tag.
	TagSize = 16

	// blobSegments is the number of colon-separated segments in a serialized blob.
	blobSegments = 3
)

// EncryptedBlob is the parsed form of an encrypted field value: a random
// 16-byte IV, a 16-byte authentication tag, and the variable-length ciphertext.
//
// The blob is persisted as a colon-joined hex string ("iv:tag:ciphertext") and
// must never be stored or returned with any component missing. A fresh blob is
// created on every write of a sensitive value, even if the plaintext is
// unchanged; IV reuse is forbidden.
type EncryptedBlob struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// String serializes the blob into its storage format: iv_hex:tag_hex:ciphertext_hex.
func (b *EncryptedBlob) String() string {
	return fmt.Sprintf(
		"%s:%s:%s",
		hex.EncodeToString(b.IV),
		hex.EncodeToString(b.Tag),
		hex.EncodeToString(b.Ciphertext),
	)
}

// ParseEncryptedBlob parses the colon-joined hex storage format back into an
// EncryptedBlob. It fails closed with ErrMalformedCiphertext on any structural
// anomaly: wrong segment count, non-hex content, or wrong IV/tag length. The
// ciphertext segment may be empty (the encryption of an empty string).
func ParseEncryptedBlob(blob string) (*EncryptedBlob, error) {
	segments := strings.Split(blob, ":")
	if len(segments) != blobSegments {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedCiphertext, len(segments))
	}

	iv, err := hex.DecodeString(segments[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid iv encoding", ErrMalformedCiphertext)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMalformedCiphertext, IVSize, len(iv))
	}

	tag, err := hex.DecodeString(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tag encoding", ErrMalformedCiphertext)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrMalformedCiphertext, TagSize, len(tag))
	}

	ciphertext, err := hex.DecodeString(segments[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", ErrMalformedCiphertext)
	}

	return &EncryptedBlob{IV: iv, Tag: tag, Ciphertext: ciphertext}, nil
}
