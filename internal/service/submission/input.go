package submission

import (
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
	"github.com/SillyFizy/grow/internal/validate"
)

// FlowerInput is one flower-part object of a submission.
type FlowerInput struct {
	SepalArrangement string `json:"sepal_arrangement" validate:"omitempty,oneof=NONE RANGE INDEFINITE"`
	SepalRangeMin    *int   `json:"sepal_range_min"   validate:"omitempty,gte=0,lte=32767"`
	SepalRangeMax    *int   `json:"sepal_range_max"   validate:"omitempty,gte=0,lte=32767"`
	SepalsFused      bool   `json:"sepals_fused"`
	PetalArrangement string `json:"petal_arrangement" validate:"omitempty,oneof=NONE RANGE INDEFINITE"`
	PetalRangeMin    *int   `json:"petal_range_min"   validate:"omitempty,gte=0,lte=32767"`
	PetalRangeMax    *int   `json:"petal_range_max"   validate:"omitempty,gte=0,lte=32767"`
	PetalsFused      bool   `json:"petals_fused"`
	Stamens          string `json:"stamens"           validate:"max=255"`
	Carpels          string `json:"carpels"           validate:"max=255"`
}

// CreateInput is the body of a new submission.
type CreateInput struct {
	NameArabic          string       `json:"name_arabic"          validate:"required,max=255"`
	NameEnglish         string       `json:"name_english"         validate:"max=255"`
	NameScientific      string       `json:"name_scientific"      validate:"required,max=255"`
	FamilyID            int64        `json:"family_id"            validate:"required,gt=0"`
	Classification      string       `json:"classification"       validate:"max=100"`
	Description         string       `json:"description"`
	SeedShapeArabic     string       `json:"seed_shape_arabic"    validate:"max=255"`
	SeedShapeEnglish    string       `json:"seed_shape_english"   validate:"max=255"`
	CotyledonType       string       `json:"cotyledon_type"       validate:"required,oneof=MONO DI"`
	FlowerType          string       `json:"flower_type"          validate:"required,oneof=BOTH HERMAPHRODITE"`
	MaleFlower          *FlowerInput `json:"male_flower"`
	FemaleFlower        *FlowerInput `json:"female_flower"`
	HermaphroditeFlower *FlowerInput `json:"hermaphrodite_flower"`
}

func (i *CreateInput) normalize() {
	for _, s := range []*string{
		&i.NameArabic, &i.NameEnglish, &i.NameScientific, &i.Classification,
		&i.Description, &i.SeedShapeArabic, &i.SeedShapeEnglish,
	} {
		*s = strings.TrimSpace(*s)
	}
	i.CotyledonType = strings.ToUpper(strings.TrimSpace(i.CotyledonType))
	i.FlowerType = strings.ToUpper(strings.TrimSpace(i.FlowerType))
	for _, f := range []*FlowerInput{i.MaleFlower, i.FemaleFlower, i.HermaphroditeFlower} {
		f.normalize()
	}
}

// normalize matches the codec, which reads arrangements case-insensitively.
func (f *FlowerInput) normalize() {
	if f == nil {
		return
	}
	f.SepalArrangement = strings.ToUpper(strings.TrimSpace(f.SepalArrangement))
	f.PetalArrangement = strings.ToUpper(strings.TrimSpace(f.PetalArrangement))
	f.Stamens = strings.TrimSpace(f.Stamens)
	f.Carpels = strings.TrimSpace(f.Carpels)
}

// Validate checks field rules and that the flower objects fit the flower
// type.
func (i CreateInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	return domain.ValidateFlowerParts(domain.FlowerType(i.FlowerType), i.details().Parts())
}

// details converts the flower objects. Missing descriptors become
// domain.NotSpecified.
func (i CreateInput) details() domain.SubmissionDetails {
	var d domain.SubmissionDetails
	if i.MaleFlower != nil {
		d.Male = &domain.MaleFlower{FlowerParts: i.MaleFlower.parts(), Stamens: descriptor(i.MaleFlower.Stamens)}
	}
	if i.FemaleFlower != nil {
		d.Female = &domain.FemaleFlower{FlowerParts: i.FemaleFlower.parts(), Carpels: descriptor(i.FemaleFlower.Carpels)}
	}
	if h := i.HermaphroditeFlower; h != nil {
		d.Hermaphrodite = &domain.HermaphroditeFlower{
			FlowerParts: h.parts(),
			Stamens:     descriptor(h.Stamens),
			Carpels:     descriptor(h.Carpels),
		}
	}
	return d
}

func (f *FlowerInput) parts() domain.FlowerParts {
	p := domain.FlowerParts{
		SepalArrangement: arrangement(f.SepalArrangement),
		SepalRangeMin:    f.SepalRangeMin,
		SepalRangeMax:    f.SepalRangeMax,
		SepalsFused:      f.SepalsFused,
		PetalArrangement: arrangement(f.PetalArrangement),
		PetalRangeMin:    f.PetalRangeMin,
		PetalRangeMax:    f.PetalRangeMax,
		PetalsFused:      f.PetalsFused,
	}
	p.Normalize()
	return p
}

func arrangement(s string) domain.Arrangement {
	if s == "" {
		return domain.ArrangementRange
	}
	return domain.Arrangement(s)
}

func descriptor(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return domain.NotSpecified
	}
	return s
}

// ListInput filters the moderation queue.
type ListInput struct {
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Limit  int    `json:"limit"  validate:"gte=0,lte=200"`
	Offset int    `json:"offset" validate:"gte=0"`
}
