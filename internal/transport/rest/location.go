package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/service/location"
)

type locationService interface {
	Create(ctx context.Context, input location.CreateInput) (*domain.PlantLocation, error)
	List(ctx context.Context, input location.ListInput) ([]domain.PlantLocation, error)
	Get(ctx context.Context, id int64) (*domain.PlantLocation, error)
	Update(ctx context.Context, id int64, input location.UpdateInput) (*domain.PlantLocation, error)
	Delete(ctx context.Context, id int64) error
	PlantStats(ctx context.Context, plantID int64) (*domain.PlantLocationStats, error)
	UserStats(ctx context.Context) (*domain.UserLocationStats, error)
}

// LocationHandler serves plant sighting endpoints.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

type plantLocationStatsResponse struct {
	PlantID          int64              `json:"plant_id"`
	TotalLocations   int                `json:"total_locations"`
	TotalPlantsFound int                `json:"total_plants_found"`
	UniqueSpotters   int                `json:"unique_spotters"`
	Locations        []locationResponse `json:"locations"`
}

type spottedPlantResponse struct {
	PlantID        int64  `json:"plant_id"`
	NameArabic     string `json:"name_arabic"`
	NameScientific string `json:"name_scientific"`
	Sightings      int    `json:"sightings"`
	Quantity       int    `json:"total_quantity"`
}

type userLocationStatsResponse struct {
	TotalLocations   int                    `json:"total_locations"`
	TotalPlantsFound int                    `json:"total_plants_found"`
	UniquePlants     int                    `json:"unique_plants"`
	Recent           []locationResponse     `json:"recent_locations"`
	MostSpotted      []spottedPlantResponse `json:"most_spotted_plants"`
}

// Create handles POST /api/locations.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input location.CreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	loc, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLocationResponse(loc))
}

// List handles GET /api/locations?plant=&ordering=.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plantID, err := queryID(q, "plant")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), location.ListInput{PlantID: plantID, Ordering: q.Get("ordering")})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLocationResponses(items))
}

// Get handles GET /api/locations/{id}.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	loc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLocationResponse(loc))
}

// Update handles PATCH /api/locations/{id}.
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var input location.UpdateInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	loc, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLocationResponse(loc))
}

// Delete handles DELETE /api/locations/{id}.
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PlantStats handles GET /api/plants/{id}/locations.
func (h *LocationHandler) PlantStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.PlantStats(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plantLocationStatsResponse{
		PlantID:          stats.PlantID,
		TotalLocations:   stats.TotalLocations,
		TotalPlantsFound: stats.TotalPlantsFound,
		UniqueSpotters:   stats.UniqueSpotters,
		Locations:        toLocationResponses(stats.Locations),
	})
}

// UserStats handles GET /api/locations/stats.
func (h *LocationHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.UserStats(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	spotted := make([]spottedPlantResponse, len(stats.MostSpotted))
	for i, p := range stats.MostSpotted {
		spotted[i] = spottedPlantResponse{
			PlantID:        p.PlantID,
			NameArabic:     p.NameArabic,
			NameScientific: p.NameScientific,
			Sightings:      p.Sightings,
			Quantity:       p.Quantity,
		}
	}

	writeJSON(w, http.StatusOK, userLocationStatsResponse{
		TotalLocations:   stats.TotalLocations,
		TotalPlantsFound: stats.TotalPlantsFound,
		UniquePlants:     stats.UniquePlants,
		Recent:           toLocationResponses(stats.Recent),
		MostSpotted:      spotted,
	})
}
