package rest

import (
	"encoding/json"
	"time"

	"github.com/SillyFizy/grow/internal/domain"
)

// mediaPrefix is the URL prefix under which permanent blobs are served.
const mediaPrefix = "/media/"

type familyResponse struct {
	ID                 int64     `json:"id"`
	NameArabic         string    `json:"name_arabic"`
	NameEnglish        string    `json:"name_english"`
	NameScientific     string    `json:"name_scientific"`
	DescriptionArabic  string    `json:"description_arabic"`
	DescriptionEnglish string    `json:"description_english"`
	CreatedAt          time.Time `json:"created_at"`
}

func toFamilyResponse(f *domain.PlantFamily) familyResponse {
	return familyResponse{
		ID:                 f.ID,
		NameArabic:         f.NameArabic,
		NameEnglish:        f.NameEnglish,
		NameScientific:     f.NameScientific,
		DescriptionArabic:  f.DescriptionArabic,
		DescriptionEnglish: f.DescriptionEnglish,
		CreatedAt:          f.CreatedAt,
	}
}

type plantResponse struct {
	ID               int64     `json:"id"`
	NameArabic       string    `json:"name_arabic"`
	NameEnglish      string    `json:"name_english"`
	NameScientific   string    `json:"name_scientific"`
	FamilyID         int64     `json:"family"`
	FamilyName       string    `json:"family_name,omitempty"`
	Classification   string    `json:"classification"`
	Description      string    `json:"description"`
	SeedShapeArabic  string    `json:"seed_shape_arabic"`
	SeedShapeEnglish string    `json:"seed_shape_english"`
	CotyledonType    string    `json:"cotyledon_type"`
	FlowerType       string    `json:"flower_type"`
	Image            *string   `json:"image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toPlantResponse(p *domain.Plant, family *domain.PlantFamily) plantResponse {
	resp := plantResponse{
		ID:               p.ID,
		NameArabic:       p.NameArabic,
		NameEnglish:      p.NameEnglish,
		NameScientific:   p.NameScientific,
		FamilyID:         p.FamilyID,
		Classification:   p.Classification,
		Description:      p.Description,
		SeedShapeArabic:  p.SeedShapeArabic,
		SeedShapeEnglish: p.SeedShapeEnglish,
		CotyledonType:    string(p.CotyledonType),
		FlowerType:       string(p.FlowerType),
		Image:            mediaURL(p.ImagePath),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if family != nil {
		resp.FamilyName = family.NameScientific
	}
	return resp
}

func mediaURL(path string) *string {
	if path == "" {
		return nil
	}
	u := mediaPrefix + path
	return &u
}

type flowerResponse struct {
	ID               int64  `json:"id"`
	SepalArrangement string `json:"sepal_arrangement"`
	SepalRangeMin    *int   `json:"sepal_range_min"`
	SepalRangeMax    *int   `json:"sepal_range_max"`
	SepalsFused      bool   `json:"sepals_fused"`
	SepalDescription string `json:"sepal_description"`
	PetalArrangement string `json:"petal_arrangement"`
	PetalRangeMin    *int   `json:"petal_range_min"`
	PetalRangeMax    *int   `json:"petal_range_max"`
	PetalsFused      bool   `json:"petals_fused"`
	PetalDescription string `json:"petal_description"`
	Stamens          string `json:"stamens,omitempty"`
	Carpels          string `json:"carpels,omitempty"`
}

func toFlowerResponse(id int64, p *domain.FlowerParts) *flowerResponse {
	return &flowerResponse{
		ID:               id,
		SepalArrangement: string(p.SepalArrangement),
		SepalRangeMin:    p.SepalRangeMin,
		SepalRangeMax:    p.SepalRangeMax,
		SepalsFused:      p.SepalsFused,
		SepalDescription: p.SepalDescription(),
		PetalArrangement: string(p.PetalArrangement),
		PetalRangeMin:    p.PetalRangeMin,
		PetalRangeMax:    p.PetalRangeMax,
		PetalsFused:      p.PetalsFused,
		PetalDescription: p.PetalDescription(),
	}
}

type flowerSetResponse struct {
	MaleFlower          *flowerResponse `json:"male_flower,omitempty"`
	FemaleFlower        *flowerResponse `json:"female_flower,omitempty"`
	HermaphroditeFlower *flowerResponse `json:"hermaphrodite_flower,omitempty"`
}

func toFlowerSetResponse(s domain.FlowerSet) flowerSetResponse {
	var resp flowerSetResponse
	if m := s.Male; m != nil {
		resp.MaleFlower = toFlowerResponse(m.ID, &m.FlowerParts)
		resp.MaleFlower.Stamens = m.Stamens
	}
	if f := s.Female; f != nil {
		resp.FemaleFlower = toFlowerResponse(f.ID, &f.FlowerParts)
		resp.FemaleFlower.Carpels = f.Carpels
	}
	if h := s.Hermaphrodite; h != nil {
		resp.HermaphroditeFlower = toFlowerResponse(h.ID, &h.FlowerParts)
		resp.HermaphroditeFlower.Stamens = h.Stamens
		resp.HermaphroditeFlower.Carpels = h.Carpels
	}
	return resp
}

type plantDetailResponse struct {
	plantResponse
	flowerSetResponse
	Family familyResponse `json:"family_detail"`
}

func toPlantDetailResponse(d *domain.PlantDetail) plantDetailResponse {
	return plantDetailResponse{
		plantResponse:     toPlantResponse(&d.Plant, &d.Family),
		flowerSetResponse: toFlowerSetResponse(d.FlowerSet),
		Family:            toFamilyResponse(&d.Family),
	}
}

type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

type submissionResponse struct {
	ID                int64           `json:"id"`
	SubmittedBy       string          `json:"submitted_by"`
	NameArabic        string          `json:"name_arabic"`
	NameEnglish       string          `json:"name_english"`
	NameScientific    string          `json:"name_scientific"`
	FamilyID          int64           `json:"family"`
	Classification    string          `json:"classification"`
	Description       string          `json:"description"`
	SeedShapeArabic   string          `json:"seed_shape_arabic"`
	SeedShapeEnglish  string          `json:"seed_shape_english"`
	CotyledonType     string          `json:"cotyledon_type"`
	FlowerType        string          `json:"flower_type"`
	Status            string          `json:"status"`
	AdminNotes        string          `json:"admin_notes"`
	AdditionalDetails json.RawMessage `json:"additional_details"`
	SubmittedAt       time.Time       `json:"submitted_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func toSubmissionResponse(s *domain.PlantSubmission) submissionResponse {
	details := s.AdditionalDetails
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}
	return submissionResponse{
		ID:                s.ID,
		SubmittedBy:       s.SubmitterID.String(),
		NameArabic:        s.NameArabic,
		NameEnglish:       s.NameEnglish,
		NameScientific:    s.NameScientific,
		FamilyID:          s.FamilyID,
		Classification:    s.Classification,
		Description:       s.Description,
		SeedShapeArabic:   s.SeedShapeArabic,
		SeedShapeEnglish:  s.SeedShapeEnglish,
		CotyledonType:     string(s.CotyledonType),
		FlowerType:        string(s.FlowerType),
		Status:            string(s.Status),
		AdminNotes:        s.AdminNotes,
		AdditionalDetails: details,
		SubmittedAt:       s.SubmittedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toSubmissionResponses(items []domain.PlantSubmission) []submissionResponse {
	out := make([]submissionResponse, len(items))
	for i := range items {
		out[i] = toSubmissionResponse(&items[i])
	}
	return out
}

type locationResponse struct {
	ID         int64     `json:"id"`
	PlantID    int64     `json:"plant"`
	PlantName  string    `json:"plant_name,omitempty"`
	PlantImage *string   `json:"plant_image,omitempty"`
	UserID     string    `json:"user"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toLocationResponse(l *domain.PlantLocation) locationResponse {
	return locationResponse{
		ID:         l.ID,
		PlantID:    l.PlantID,
		PlantName:  l.PlantName,
		PlantImage: mediaURL(l.PlantImagePath),
		UserID:     l.UserID.String(),
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		Quantity:   l.Quantity,
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toLocationResponses(items []domain.PlantLocation) []locationResponse {
	out := make([]locationResponse, len(items))
	for i := range items {
		out[i] = toLocationResponse(&items[i])
	}
	return out
}
