// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/SillyFizy/grow/internal/adapter/postgres"
	"github.com/SillyFizy/grow/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, id.String(), `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByLogin returns the user whose username or email equals login,
// ignoring case.
func (r *Repo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.get(ctx, login,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($1) LIMIT 1`, login)
}

func (r *Repo) get(ctx context.Context, key, sql string, arg any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, arg); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", key)
	}

	u := toDomain(row)
	return &u, nil
}

// Create inserts a user. Returns domain.ErrAlreadyExists when the username
// or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.Username, u.Email, u.PasswordHash, string(role),
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := toDomain(row)
	return &created, nil
}

// SetRoleByEmail changes the role of the user with the given email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE users SET role = $2, updated_at = now() WHERE lower(email) = lower($1) RETURNING `+userColumns,
		email, string(role))
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", email)
	}

	u := toDomain(row)
	return &u, nil
}

func toDomain(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
