package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/flowerdetail"
	"github.com/SillyFizy/grow/internal/validate"
)

// FamilyListInput holds the family search and ordering. Ordering names a
// column with an optional "-" prefix for descending order.
type FamilyListInput struct {
	Search   string `json:"search"   validate:"max=255"`
	Ordering string `json:"ordering" validate:"omitempty,oneof=id -id name_arabic -name_arabic name_english -name_english name_scientific -name_scientific"`
}

// PlantListInput holds the catalog filters.
type PlantListInput struct {
	FamilyID               *int64 `json:"family"                  validate:"omitempty,gt=0"`
	CotyledonType          string `json:"cotyledon_type"          validate:"omitempty,oneof=MONO DI"`
	FlowerType             string `json:"flower_type"             validate:"omitempty,oneof=BOTH HERMAPHRODITE"`
	Classification         string `json:"classification"          validate:"max=100"`
	Query                  string `json:"q"                       validate:"max=255"`
	Name                   string `json:"name"                    validate:"max=255"`
	ClassificationContains string `json:"classification_contains" validate:"max=100"`
	Ordering               string `json:"ordering"                validate:"omitempty,oneof=id -id name_arabic -name_arabic name_scientific -name_scientific"`
	Limit                  int    `json:"limit"                   validate:"gte=0"`
	Offset                 int    `json:"offset"                  validate:"gte=0"`
}

func (i *PlantListInput) filter(defaultLimit, maxLimit int) domain.PlantFilter {
	f := domain.PlantFilter{
		FamilyID: i.FamilyID,
		Offset:   i.Offset,
	}
	f.SortBy, f.SortDesc = ordering(i.Ordering)

	if i.CotyledonType != "" {
		ct := domain.CotyledonType(i.CotyledonType)
		f.CotyledonType = &ct
	}
	if i.FlowerType != "" {
		ft := domain.FlowerType(i.FlowerType)
		f.FlowerType = &ft
	}
	f.Classification = optional(i.Classification)
	f.Query = optional(i.Query)
	f.Name = optional(i.Name)
	f.ClassificationContains = optional(i.ClassificationContains)

	switch {
	case i.Limit == 0:
		f.Limit = defaultLimit
	case i.Limit > maxLimit:
		f.Limit = maxLimit
	default:
		f.Limit = i.Limit
	}
	return f
}

func ordering(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest, true
	}
	return s, false
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// CreateFamilyInput is the body of a new family.
type CreateFamilyInput struct {
	NameArabic         string `json:"name_arabic"         validate:"required,max=255"`
	NameEnglish        string `json:"name_english"        validate:"max=255"`
	NameScientific     string `json:"name_scientific"     validate:"required,max=255"`
	DescriptionArabic  string `json:"description_arabic"`
	DescriptionEnglish string `json:"description_english"`
}

func (i *CreateFamilyInput) normalize() {
	for _, s := range []*string{
		&i.NameArabic, &i.NameEnglish, &i.NameScientific, &i.DescriptionArabic, &i.DescriptionEnglish,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// CreatePlantInput is a plant entered directly by an administrator. Flower
// objects use the same shape as submission details.
type CreatePlantInput struct {
	NameArabic          string          `json:"name_arabic"          validate:"required,max=255"`
	NameEnglish         string          `json:"name_english"         validate:"max=255"`
	NameScientific      string          `json:"name_scientific"      validate:"required,max=255"`
	FamilyID            int64           `json:"family_id"            validate:"required,gt=0"`
	Classification      string          `json:"classification"       validate:"max=100"`
	Description         string          `json:"description"`
	SeedShapeArabic     string          `json:"seed_shape_arabic"    validate:"max=255"`
	SeedShapeEnglish    string          `json:"seed_shape_english"   validate:"max=255"`
	CotyledonType       string          `json:"cotyledon_type"       validate:"required,oneof=MONO DI"`
	FlowerType          string          `json:"flower_type"          validate:"required,oneof=BOTH HERMAPHRODITE"`
	MaleFlower          json.RawMessage `json:"male_flower"`
	FemaleFlower        json.RawMessage `json:"female_flower"`
	HermaphroditeFlower json.RawMessage `json:"hermaphrodite_flower"`
}

func (i *CreatePlantInput) normalize() {
	for _, s := range []*string{
		&i.NameArabic, &i.NameEnglish, &i.NameScientific, &i.Classification,
		&i.Description, &i.SeedShapeArabic, &i.SeedShapeEnglish,
	} {
		*s = strings.TrimSpace(*s)
	}
	i.CotyledonType = strings.ToUpper(strings.TrimSpace(i.CotyledonType))
	i.FlowerType = strings.ToUpper(strings.TrimSpace(i.FlowerType))
}

// parts validates the input and decodes the flower objects. A flower
// object the flower type does not allow is rejected.
func (i CreatePlantInput) parts() ([]domain.FlowerPart, error) {
	if err := validate.Struct(i); err != nil {
		return nil, err
	}

	flowerType := domain.FlowerType(i.FlowerType)
	doc := map[string]json.RawMessage{}
	var errs []domain.FieldError
	for _, p := range []struct {
		kind domain.FlowerPartKind
		raw  json.RawMessage
	}{
		{domain.FlowerPartMale, i.MaleFlower},
		{domain.FlowerPartFemale, i.FemaleFlower},
		{domain.FlowerPartHermaphrodite, i.HermaphroditeFlower},
	} {
		kind, raw := p.kind, p.raw
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		if !flowerType.Allows(kind) {
			errs = append(errs, domain.FieldError{Field: string(kind), Message: "not allowed for flower type " + i.FlowerType})
			continue
		}
		doc[string(kind)] = raw
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode flower objects: %w", err)
	}
	details, err := flowerdetail.Decode(raw, flowerType)
	if err != nil {
		return nil, err
	}
	return details.Parts(), nil
}

func (i CreatePlantInput) plant() *domain.Plant {
	return &domain.Plant{
		NameArabic:       i.NameArabic,
		NameEnglish:      i.NameEnglish,
		NameScientific:   i.NameScientific,
		FamilyID:         i.FamilyID,
		Classification:   i.Classification,
		Description:      i.Description,
		SeedShapeArabic:  i.SeedShapeArabic,
		SeedShapeEnglish: i.SeedShapeEnglish,
		CotyledonType:    domain.CotyledonType(i.CotyledonType),
		FlowerType:       domain.FlowerType(i.FlowerType),
	}
}
