package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// Login signs in by username or email. A missing user and a wrong password
// both return ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Login = strings.TrimSpace(input.Login)

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.users.GetByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(input.Password))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
