package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SillyFizy/grow/internal/domain"
)

// errorResponse is the body of every non-2xx response. Fields is set for
// validation failures and maps a field name to its message.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error to its HTTP status. Unknown errors
// are logged and reported as 500 without details.
func writeServiceError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, "submission is not pending")
	case errors.Is(err, domain.ErrUnavailable):
		log.ErrorContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
