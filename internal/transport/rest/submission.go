package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/service/submission"
)

type submissionService interface {
	Create(ctx context.Context, input submission.CreateInput, image io.Reader) (*domain.PlantSubmission, error)
	Mine(ctx context.Context) ([]domain.PlantSubmission, error)
}

// SubmissionHandler serves submission intake endpoints.
type SubmissionHandler struct {
	svc       submissionService
	maxUpload int64
	log       *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler. maxUpload bounds the
// size of a multipart request body beyond the image itself.
func NewSubmissionHandler(svc submissionService, maxUpload int64, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       logger.With("handler", "submission"),
	}
}

// Create handles POST /api/submissions. The body is either a JSON object or
// a multipart form with a JSON "data" field and an optional "image" file.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var (
		input submission.CreateInput
		image io.Reader
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, err := h.parseMultipart(w, r, &input)
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll() //nolint:errcheck
		}
		if err != nil {
			writeServiceError(h.log, w, r, err)
			return
		}
		if file != nil {
			defer file.Close()
			image = file
		}
	} else if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input, image)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(created))
}

func (h *SubmissionHandler) parseMultipart(w http.ResponseWriter, r *http.Request, input *submission.CreateInput) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+maxJSONBody)
	if err := r.ParseMultipartForm(maxJSONBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError("image", "file is too large")
		}
		return nil, fmt.Errorf("%w: invalid multipart form", domain.ErrValidation)
	}

	data := r.FormValue("data")
	if strings.TrimSpace(data) == "" {
		return nil, domain.NewValidationError("data", "is required")
	}
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	if err := decodeInto(dec, input); err != nil {
		return nil, err
	}

	file, _, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return nil, nil
	case err != nil:
		return nil, domain.NewValidationError("image", "unreadable file")
	}
	return file, nil
}

// Mine handles GET /api/submissions/mine.
func (h *SubmissionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Mine(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponses(items))
}
