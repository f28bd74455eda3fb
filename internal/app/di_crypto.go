package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	cryptoDomain "github.com/allisson/hrvault/internal/crypto/domain"
	cryptoService "github.com/allisson/hrvault/internal/crypto/service"
)

// cryptoComponents holds the field encryption dependencies.
type cryptoComponents struct {
	fieldKey     *cryptoDomain.FieldKey
	fieldVault   cryptoService.FieldVault
	searchHasher cryptoService.SearchHasher
	kmsService   cryptoService.KMSService

	fieldKeyInit     sync.Once
	fieldVaultInit   sync.Once
	searchHasherInit sync.Once
	kmsServiceInit   sync.Once
}

// KMSService returns the KMS keeper factory.
func (c *Container) KMSService() cryptoService.KMSService {
	c.crypto.kmsServiceInit.Do(func() {
		c.crypto.kmsService = cryptoService.NewKMSService()
	})
	return c.crypto.kmsService
}

// FieldKey returns the process-wide field encryption key, loading it on first
// access. An absent or malformed key is fatal here, at startup, rather than
// on the first encrypt call.
func (c *Container) FieldKey() (*cryptoDomain.FieldKey, error) {
	c.crypto.fieldKeyInit.Do(func() {
		key, err := c.initFieldKey()
		if err != nil {
			c.initErrors["fieldKey"] = err
			return
		}
		c.crypto.fieldKey = key
	})
	if storedErr, exists := c.initErrors["fieldKey"]; exists {
		return nil, storedErr
	}
	return c.crypto.fieldKey, nil
}

// FieldVault returns the AES-256-GCM field vault.
func (c *Container) FieldVault() (cryptoService.FieldVault, error) {
	c.crypto.fieldVaultInit.Do(func() {
		key, err := c.FieldKey()
		if err != nil {
			c.initErrors["fieldVault"] = err
			return
		}
		vault, err := cryptoService.NewFieldVault(key)
		if err != nil {
			c.initErrors["fieldVault"] = fmt.Errorf("failed to create field vault: %w", err)
			return
		}
		c.crypto.fieldVault = vault
	})
	if storedErr, exists := c.initErrors["fieldVault"]; exists {
		return nil, storedErr
	}
	return c.crypto.fieldVault, nil
}

// SearchHasher returns the HMAC search hasher for the sidecar hash columns.
func (c *Container) SearchHasher() (cryptoService.SearchHasher, error) {
	c.crypto.searchHasherInit.Do(func() {
		key, err := c.FieldKey()
		if err != nil {
			c.initErrors["searchHasher"] = err
			return
		}
		hasher, err := cryptoService.NewSearchHasher(key)
		if err != nil {
			c.initErrors["searchHasher"] = fmt.Errorf("failed to create search hasher: %w", err)
			return
		}
		c.crypto.searchHasher = hasher
	})
	if storedErr, exists := c.initErrors["searchHasher"]; exists {
		return nil, storedErr
	}
	return c.crypto.searchHasher, nil
}

// initFieldKey loads the field key from FIELD_KEY, or unwraps
// FIELD_KEY_WRAPPED through the KMS keeper identified by KMS_KEY_URI.
func (c *Container) initFieldKey() (*cryptoDomain.FieldKey, error) {
	if c.config.FieldKey != "" {
		return cryptoDomain.DecodeFieldKey(c.config.FieldKey)
	}

	if c.config.FieldKeyWrapped == "" {
		return nil, cryptoDomain.ErrKeyNotConfigured
	}
	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("FIELD_KEY_WRAPPED is set but KMS_KEY_URI is empty")
	}

	wrapped, err := base64.StdEncoding.DecodeString(c.config.FieldKeyWrapped)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 wrapped field key: %w", err)
	}

	ctx := context.Background()
	keeper, err := c.KMSService().OpenKeeper(ctx, c.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() { _ = keeper.Close() }()

	raw, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap field key: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	return cryptoDomain.NewFieldKey(raw)
}
