package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/hrvault/internal/crypto/domain"
)

func testFieldKey(t *testing.T, fill byte) *cryptoDomain.FieldKey {
	t.Helper()

	raw := make([]byte, cryptoDomain.FieldKeySize)
	for i := range raw {
		raw[i] = fill
	}

	key, err := cryptoDomain.NewFieldKey(raw)
	require.NoError(t, err)
	return key
}

// flipHexChar flips one hex character at the given offset within a blob string.
func flipHexChar(blob string, offset int) string {
	b := []byte(blob)
	if b[offset] == '0' {
		b[offset] = '1'
	} else {
		b[offset] = '0'
	}
	return string(b)
}

func TestFieldVault_Encrypt(t *testing.T) {
	vault, err := NewFieldVault(testFieldKey(t, 0x01))
	require.NoError(t, err)

	t.Run("Success_BlobHasThreeSegments", func(t *testing.T) {
		blob, err := vault.Encrypt("13812345678")

		require.NoError(t, err)
		segments := strings.Split(blob, ":")
		require.Len(t, segments, 3)
		assert.Len(t, segments[0], cryptoDomain.IVSize*2)
		assert.Len(t, segments[1], cryptoDomain.TagSize*2)
	})

	t.Run("Success_NonDeterministic", func(t *testing.T) {
		// Fresh IV per call: identical plaintexts never share a blob, so
		// digit-identical fields across records leak no equality pattern.
		first, err := vault.Encrypt("110101199001011234")
		require.NoError(t, err)

		second, err := vault.Encrypt("110101199001011234")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestFieldVault_Decrypt(t *testing.T) {
	vault, err := NewFieldVault(testFieldKey(t, 0x02))
	require.NoError(t, err)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		for _, plaintext := range []string{
			"张伟",
			"13812345678",
			"110101199001011234",
			"6217001234567890123",
			"北京市朝阳区中山路42号",
			"a",
			strings.Repeat("x", 4096),
		} {
			blob, err := vault.Encrypt(plaintext)
			require.NoError(t, err)

			decrypted, err := vault.Decrypt(blob)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		}
	})

	t.Run("Success_RoundTripEmptyString", func(t *testing.T) {
		blob, err := vault.Encrypt("")
		require.NoError(t, err)

		decrypted, err := vault.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, "", decrypted)
	})

	t.Run("Error_TamperedCiphertext", func(t *testing.T) {
		blob, err := vault.Encrypt("sensitive value")
		require.NoError(t, err)

		// Flip a hex character inside the ciphertext segment (after iv and tag).
		tampered := flipHexChar(blob, len(blob)-1)

		_, err = vault.Decrypt(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrCiphertextAuthentication)
	})

	t.Run("Error_TamperedTag", func(t *testing.T) {
		blob, err := vault.Encrypt("sensitive value")
		require.NoError(t, err)

		// The tag segment starts right after the iv segment and its colon.
		tagOffset := cryptoDomain.IVSize*2 + 1
		tampered := flipHexChar(blob, tagOffset)

		_, err = vault.Decrypt(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrCiphertextAuthentication)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		blob, err := vault.Encrypt("sensitive value")
		require.NoError(t, err)

		otherVault, err := NewFieldVault(testFieldKey(t, 0x03))
		require.NoError(t, err)

		_, err = otherVault.Decrypt(blob)
		assert.ErrorIs(t, err, cryptoDomain.ErrCiphertextAuthentication)
	})

	t.Run("Error_MalformedBlob", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-blob",
			"aa:bb",
			"aa:bb:cc:dd",
			"zz:" + strings.Repeat("00", cryptoDomain.TagSize) + ":aa",
		} {
			_, err := vault.Decrypt(input)
			assert.ErrorIs(t, err, cryptoDomain.ErrMalformedCiphertext, "input %q", input)
		}
	})
}
