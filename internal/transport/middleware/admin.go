package middleware

import (
	"net/http"

	"github.com/SillyFizy/grow/pkg/ctxutil"
)

// RequireAdmin rejects anonymous requests with 401 and non-admin users
// with 403. Mount it after Auth on moderation routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeJSONError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
