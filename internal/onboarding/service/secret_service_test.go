package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretService_GenerateSecret(t *testing.T) {
	service := NewSecretService()

	t.Run("Success_GeneratesValidSecret", func(t *testing.T) {
		plainSecret, hashedSecret, err := service.GenerateSecret()
		require.NoError(t, err)

		assert.NotEmpty(t, plainSecret)

		decoded, err := base64.URLEncoding.DecodeString(plainSecret)
		require.NoError(t, err)
		assert.Len(t, decoded, 32)

		assert.NotEmpty(t, hashedSecret)
		assert.NotEqual(t, plainSecret, hashedSecret)
		assert.Contains(t, hashedSecret, "$argon2id$")
	})

	t.Run("Success_GeneratesUniqueSecrets", func(t *testing.T) {
		plainSecret1, hashedSecret1, err := service.GenerateSecret()
		require.NoError(t, err)

		plainSecret2, hashedSecret2, err := service.GenerateSecret()
		require.NoError(t, err)

		assert.NotEqual(t, plainSecret1, plainSecret2)
		assert.NotEqual(t, hashedSecret1, hashedSecret2)
	})
}

func TestSecretService_CompareSecret(t *testing.T) {
	service := NewSecretService()

	t.Run("Success_CorrectSecretMatches", func(t *testing.T) {
		plainSecret, hashedSecret, err := service.GenerateSecret()
		require.NoError(t, err)

		assert.True(t, service.CompareSecret(plainSecret, hashedSecret))
	})

	t.Run("Failure_IncorrectSecretDoesNotMatch", func(t *testing.T) {
		_, hashedSecret, err := service.GenerateSecret()
		require.NoError(t, err)

		assert.False(t, service.CompareSecret("wrong-secret", hashedSecret))
	})

	t.Run("Failure_EmptySecretDoesNotMatch", func(t *testing.T) {
		_, hashedSecret, err := service.GenerateSecret()
		require.NoError(t, err)

		assert.False(t, service.CompareSecret("", hashedSecret))
	})

	t.Run("Failure_InvalidHashFormat", func(t *testing.T) {
		assert.False(t, service.CompareSecret("some-secret", "invalid-hash-format"))
	})

	t.Run("Failure_EmptyHashString", func(t *testing.T) {
		assert.False(t, service.CompareSecret("some-secret", ""))
	})
}
