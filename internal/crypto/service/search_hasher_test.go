package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHasher_Hash(t *testing.T) {
	hasher, err := NewSearchHasher(testFieldKey(t, 0x04))
	require.NoError(t, err)

	t.Run("Success_CaseNormalization", func(t *testing.T) {
		lower := hasher.Hash("abc")

		assert.Equal(t, lower, hasher.Hash("Abc"))
		assert.Equal(t, lower, hasher.Hash("ABC"))
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		assert.Equal(t, hasher.Hash("13812345678"), hasher.Hash("13812345678"))
	})

	t.Run("Success_32ByteHexDigest", func(t *testing.T) {
		digest := hasher.Hash("张伟")

		assert.Len(t, digest, 64)
		for _, char := range digest {
			assert.True(t,
				(char >= '0' && char <= '9') || (char >= 'a' && char <= 'f'),
				"digest should only contain hex characters")
		}
	})

	t.Run("Success_DifferentInputsDiffer", func(t *testing.T) {
		assert.NotEqual(t, hasher.Hash("13812345678"), hasher.Hash("13812345679"))
	})

	t.Run("Success_SameKeyProducesSameDigest", func(t *testing.T) {
		other, err := NewSearchHasher(testFieldKey(t, 0x04))
		require.NoError(t, err)

		assert.Equal(t, hasher.Hash("110101199001011234"), other.Hash("110101199001011234"))
	})

	t.Run("Success_DifferentKeysProduceDifferentDigests", func(t *testing.T) {
		// The digest is keyed: an exposed sidecar column from one deployment
		// is useless against another.
		other, err := NewSearchHasher(testFieldKey(t, 0x05))
		require.NoError(t, err)

		assert.NotEqual(t, hasher.Hash("13812345678"), other.Hash("13812345678"))
	})

	t.Run("Success_EmptyInput", func(t *testing.T) {
		assert.Len(t, hasher.Hash(""), 64)
	})
}
