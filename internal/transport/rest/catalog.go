package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/service/catalog"
	"github.com/SillyFizy/grow/internal/transport/dataloader"
)

type catalogService interface {
	ListFamilies(ctx context.Context, input catalog.FamilyListInput) ([]domain.PlantFamily, error)
	GetFamily(ctx context.Context, id int64) (*domain.PlantFamily, error)
	ListPlants(ctx context.Context, input catalog.PlantListInput) ([]domain.Plant, int, error)
	GetPlant(ctx context.Context, id int64) (*domain.PlantDetail, error)
	PlantsByFamily(ctx context.Context, familyID int64) ([]domain.Plant, error)
}

// CatalogHandler serves the public catalog. Plant lists resolve families
// and flower parts through the request dataloaders.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type familyPlantResponse struct {
	plantResponse
	flowerSetResponse
}

// ListFamilies handles GET /api/families?search=&ordering=.
func (h *CatalogHandler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	families, err := h.svc.ListFamilies(r.Context(), catalog.FamilyListInput{
		Search:   strings.TrimSpace(q.Get("search")),
		Ordering: q.Get("ordering"),
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]familyResponse, len(families))
	for i := range families {
		out[i] = toFamilyResponse(&families[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetFamily handles GET /api/families/{id}.
func (h *CatalogHandler) GetFamily(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	family, err := h.svc.GetFamily(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(family))
}

// FamilyPlants handles GET /api/families/{id}/plants. Each plant carries
// its flower parts.
func (h *CatalogHandler) FamilyPlants(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	plants, err := h.svc.PlantsByFamily(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	sets, err := dataloader.FromContext(r.Context()).LoadFlowerSets(r.Context(), plants)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]familyPlantResponse, len(plants))
	for i := range plants {
		out[i] = familyPlantResponse{
			plantResponse:     toPlantResponse(&plants[i], nil),
			flowerSetResponse: toFlowerSetResponse(sets[plants[i].ID]),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// ListPlants handles GET /api/plants.
func (h *CatalogHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	input, err := plantListInput(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	plants, total, err := h.svc.ListPlants(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	families, err := dataloader.FromContext(r.Context()).LoadFamilies(r.Context(), plants)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	out := make([]plantResponse, len(plants))
	for i := range plants {
		out[i] = toPlantResponse(&plants[i], families[plants[i].FamilyID])
	}
	writeJSON(w, http.StatusOK, listResponse[plantResponse]{Count: total, Results: out})
}

// GetPlant handles GET /api/plants/{id}.
func (h *CatalogHandler) GetPlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.GetPlant(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlantDetailResponse(detail))
}

func plantListInput(r *http.Request) (catalog.PlantListInput, error) {
	q := r.URL.Query()
	input := catalog.PlantListInput{
		CotyledonType:          q.Get("cotyledon_type"),
		FlowerType:             q.Get("flower_type"),
		Classification:         strings.TrimSpace(q.Get("classification")),
		Query:                  strings.TrimSpace(q.Get("q")),
		Name:                   strings.TrimSpace(q.Get("name")),
		ClassificationContains: strings.TrimSpace(q.Get("classification_contains")),
		Ordering:               q.Get("ordering"),
	}

	var err error
	if input.FamilyID, err = queryID(q, "family"); err != nil {
		return input, err
	}
	if input.Limit, err = queryInt(q, "limit"); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(q, "offset"); err != nil {
		return input, err
	}
	return input, nil
}
