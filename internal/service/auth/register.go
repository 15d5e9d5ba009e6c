package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/SillyFizy/grow/internal/domain"
)

// Register creates a user with a password and signs them in.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(s.cfg.PasswordMinLength); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Uniqueness of email and username is enforced by DB constraints.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         domain.UserRoleUser,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
