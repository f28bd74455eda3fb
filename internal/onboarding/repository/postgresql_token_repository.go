// Package repository provides persistence implementations for onboarding
// link tokens.
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

// PostgreSQLTokenRepository implements LinkToken persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new LinkToken into the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *onboardingDomain.LinkToken) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO onboarding_tokens (id, secret_hash, employee_number, expires_at, used_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
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

// Get retrieves a LinkToken by ID from the PostgreSQL database. Returns
// ErrTokenNotFound if the token doesn't exist.
func (p *PostgreSQLTokenRepository) Get(ctx context.Context, tokenID uuid.UUID) (*onboardingDomain.LinkToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, secret_hash, employee_number, expires_at, used_at, created_at
			  FROM onboarding_tokens WHERE id = $1`

	var token onboardingDomain.LinkToken

	err := querier.QueryRowContext(ctx, query, tokenID).Scan(
		&token.ID,
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

	return &token, nil
}

// MarkUsed stamps the token as redeemed. The used_at guard makes the update
// conditional so that concurrent redemptions cannot both succeed; a loser
// sees ErrTokenNotFound.
func (p *PostgreSQLTokenRepository) MarkUsed(ctx context.Context, tokenID uuid.UUID, usedAt time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE onboarding_tokens SET used_at = $1 WHERE id = $2 AND used_at IS NULL`

	result, err := querier.ExecContext(ctx, query, usedAt, tokenID)
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

// NewPostgreSQLTokenRepository creates a new PostgreSQL LinkToken repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}
