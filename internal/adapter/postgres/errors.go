package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SillyFizy/grow/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// A nil id is left out of the message.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != nil {
		label = fmt.Sprintf("%s %v", entity, id)
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s: %w", label, domain.ErrAlreadyExists)
		case pgErr.Code == "23503": // foreign_key_violation; kept apart from a missing target row
			return fmt.Errorf("%s: %s references a missing row: %w", label, pgErr.ConstraintName, domain.ErrValidation)
		case pgErr.Code == "23001": // restrict_violation
			return fmt.Errorf("%s: still referenced: %w", label, domain.ErrConflict)
		case pgErr.Code == "23514", pgErr.Code == "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s: %s: %w", label, pgErr.Message, domain.ErrValidation)
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "57P01", pgErr.Code == "53300":
			return fmt.Errorf("%s: %w: %v", label, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("%s: %w", label, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %v", label, domain.ErrUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", label, err)
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed)
}
