package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SillyFizy/grow/internal/auth"
	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
)

// Refresh exchanges a refresh token for a new pair and revokes the old one.
// Unknown, revoked or expired tokens and tokens of deleted users all yield
// ErrUnauthorized; an unknown token is logged as possible reuse.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	input.RefreshToken = strings.TrimSpace(input.RefreshToken)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if !token.Active(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// The old token is revoked and the new pair stored together.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
