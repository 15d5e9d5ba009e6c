// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		token.UserID, token.TokenHash, token.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token", nil)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var row tokenRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
		   FROM refresh_tokens
		  WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`, tokenHash)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("refresh_token: %w", domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "refresh_token", nil)
	}

	return &domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		return postgres.MapError(err, "refresh_token", nil)
	}
	return nil
}

// DeleteExpired removes expired and revoked tokens and returns how many
// were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", postgres.MapError(err, "refresh_token", nil))
	}
	return int(tag.RowsAffected()), nil
}
