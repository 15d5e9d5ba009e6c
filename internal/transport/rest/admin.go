package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/service/catalog"
	"github.com/SillyFizy/grow/internal/service/submission"
)

type moderationQueue interface {
	List(ctx context.Context, input submission.ListInput) ([]domain.PlantSubmission, int, error)
	Get(ctx context.Context, id int64) (*domain.PlantSubmission, error)
}

type promoter interface {
	Promote(ctx context.Context, id int64) (*domain.PromotionResult, error)
	PromoteMany(ctx context.Context, ids []int64) (*domain.BatchResult, error)
	Reject(ctx context.Context, ids []int64) (int, error)
}

type catalogAdmin interface {
	CreateFamily(ctx context.Context, input catalog.CreateFamilyInput) (*domain.PlantFamily, error)
	DeleteFamily(ctx context.Context, id int64) error
	CreatePlant(ctx context.Context, input catalog.CreatePlantInput) (*domain.PlantDetail, error)
	DeletePlant(ctx context.Context, id int64) error
}

// AdminHandler serves moderation and catalog administration endpoints.
// Routes are mounted behind middleware.RequireAdmin.
type AdminHandler struct {
	queue    moderationQueue
	promoter promoter
	catalog  catalogAdmin
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(queue moderationQueue, promoter promoter, catalog catalogAdmin, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		queue:    queue,
		promoter: promoter,
		catalog:  catalog,
		log:      logger.With("handler", "admin"),
	}
}

type promotionResponse struct {
	SubmissionID int64  `json:"submission_id"`
	PlantID      int64  `json:"plant_id"`
	ImageError   string `json:"image_error,omitempty"`
}

type promotionFailureResponse struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type batchResponse struct {
	SuccessCount int                        `json:"success_count"`
	FailureCount int                        `json:"failure_count"`
	Succeeded    []promotionResponse        `json:"succeeded"`
	Failed       []promotionFailureResponse `json:"failed"`
}

// interruptedBatchResponse carries the submissions handled before the
// store became unavailable. They are committed.
type interruptedBatchResponse struct {
	Error   string        `json:"error"`
	Partial batchResponse `json:"partial"`
}

// ListSubmissions handles GET /api/admin/submissions?status=&limit=&offset=.
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := submission.ListInput{Status: q.Get("status")}

	var err error
	if input.Limit, err = queryInt(q, "limit"); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(q, "offset"); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, total, err := h.queue.List(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[submissionResponse]{
		Count:   total,
		Results: toSubmissionResponses(items),
	})
}

// GetSubmission handles GET /api/admin/submissions/{id}.
func (h *AdminHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	sub, err := h.queue.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// Approve handles POST /api/admin/submissions/{id}/approve.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	result, err := h.promoter.Promote(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromotionResponse(*result))
}

// ApproveMany handles POST /api/admin/submissions/approve. Per-item
// failures are reported in the body; the status is 200 even when every
// item failed.
func (h *AdminHandler) ApproveMany(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	result, err := h.promoter.PromoteMany(r.Context(), req.IDs)
	if err != nil && result != nil && errors.Is(err, domain.ErrUnavailable) {
		h.log.ErrorContext(r.Context(), "batch promotion interrupted", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, interruptedBatchResponse{
			Error:   "service unavailable",
			Partial: toBatchResponse(result),
		})
		return
	}
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(result))
}

// Reject handles POST /api/admin/submissions/reject.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	count, err := h.promoter.Reject(r.Context(), req.IDs)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// CreateFamily handles POST /api/admin/families.
func (h *AdminHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreateFamilyInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	family, err := h.catalog.CreateFamily(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFamilyResponse(family))
}

// DeleteFamily handles DELETE /api/admin/families/{id}. A family that
// still has plants is protected and yields 409.
func (h *AdminHandler) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.catalog.DeleteFamily(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreatePlant handles POST /api/admin/plants.
func (h *AdminHandler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreatePlantInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	detail, err := h.catalog.CreatePlant(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlantDetailResponse(detail))
}

// DeletePlant handles DELETE /api/admin/plants/{id}.
func (h *AdminHandler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.catalog.DeletePlant(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPromotionResponse(r domain.PromotionResult) promotionResponse {
	return promotionResponse{
		SubmissionID: r.SubmissionID,
		PlantID:      r.PlantID,
		ImageError:   r.ImageError,
	}
}

func toBatchResponse(r *domain.BatchResult) batchResponse {
	resp := batchResponse{
		SuccessCount: len(r.Succeeded),
		FailureCount: len(r.Failed),
		Succeeded:    make([]promotionResponse, len(r.Succeeded)),
		Failed:       make([]promotionFailureResponse, len(r.Failed)),
	}
	for i, s := range r.Succeeded {
		resp.Succeeded[i] = toPromotionResponse(s)
	}
	for i, f := range r.Failed {
		resp.Failed[i] = promotionFailureResponse{ID: f.ID, Reason: f.Reason}
	}
	return resp
}
