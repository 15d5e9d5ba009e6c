// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	userRoleKey  struct{}
	requestIDKey struct{}
)

// adminRole mirrors domain.UserRoleAdmin; ctxutil must not import domain.
const adminRole = "admin"

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. A stored uuid.Nil counts as
// anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey{}).(string)
	return role
}

// IsAdminCtx is true only for an authenticated caller with the admin role.
func IsAdminCtx(ctx context.Context) bool {
	_, ok := UserIDFromCtx(ctx)
	return ok && UserRoleFromCtx(ctx) == adminRole
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
