package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/hrvault/internal/database"
	apperrors "github.com/allisson/hrvault/internal/errors"
	onboardingDomain "github.com/allisson/hrvault/internal/onboarding/domain"
)

// MySQLTokenRepository implements LinkToken persistence for MySQL.
// UUIDs are stored as BINARY(16); transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new LinkToken into the MySQL database.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *onboardingDomain.LinkToken) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token ID")
	}

	query := `INSERT INTO onboarding_tokens (id, secret_hash, employee_number, expires_at, used_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		token.SecretHash,
		token.EmployeeNumber,
		token.ExpiresAt,
		token.UsedAt,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create onboarding token")
	}
	return nil
}

// Get retrieves a LinkToken by ID from the MySQL database. Returns
// ErrTokenNotFound if the token doesn't exist.
func (m *MySQLTokenRepository) Get(ctx context.Context, tokenID uuid.UUID) (*onboardingDomain.LinkToken, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := tokenID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal token ID")
	}

	query := `SELECT id, secret_hash, employee_number, expires_at, used_at, created_at
			  FROM onboarding_tokens WHERE id = ?`

	var token onboardingDomain.LinkToken
	var rawID []byte

	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&rawID,
		&token.SecretHash,
		&token.EmployeeNumber,
		&token.ExpiresAt,
		&token.UsedAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, onboardingDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get onboarding token")
	}

	if err := token.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token ID")
	}

	return &token, nil
}

// MarkUsed stamps the token as redeemed. The used_at guard makes the update
// conditional so that concurrent redemptions cannot both succeed; a loser
// sees ErrTokenNotFound.
func (m *MySQLTokenRepository) MarkUsed(ctx context.Context, tokenID uuid.UUID, usedAt time.Time) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := tokenID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token ID")
	}

	query := `UPDATE onboarding_tokens SET used_at = ? WHERE id = ? AND used_at IS NULL`

	result, err := querier.ExecContext(ctx, query, usedAt, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark onboarding token as used")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return onboardingDomain.ErrTokenNotFound
	}

	return nil
}

// NewMySQLTokenRepository creates a new MySQL LinkToken repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}
