package domain

import (
	"fmt"
	"strconv"
	"time"
)

// NotSpecified is stored for a stamen or carpel description that was omitted.
const NotSpecified = "Not specified"

// MaxPartCount is the largest sepal or petal count the catalog stores.
const MaxPartCount = 32767

// PlantFamily is a taxonomic family. A family is never deleted while a
// plant or submission references it.
type PlantFamily struct {
	ID                 int64
	NameArabic         string
	NameEnglish        string
	NameScientific     string
	DescriptionArabic  string
	DescriptionEnglish string
	CreatedAt          time.Time
}

// Plant is a catalog entry. Its flower_type decides which flower-part
// records may exist for it.
type Plant struct {
	ID               int64
	NameArabic       string
	NameEnglish      string
	NameScientific   string
	FamilyID         int64
	Classification   string
	Description      string
	SeedShapeArabic  string
	SeedShapeEnglish string
	CotyledonType    CotyledonType
	FlowerType       FlowerType
	// ImagePath is the permanent blob path, empty when the plant has no image.
	ImagePath string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasImage reports whether a permanent image is attached.
func (p *Plant) HasImage() bool { return p.ImagePath != "" }

// FlowerSet groups the flower parts of one plant.
type FlowerSet struct {
	Male          *MaleFlower
	Female        *FemaleFlower
	Hermaphrodite *HermaphroditeFlower
}

// Add stores part in the set under its stored id and plant.
func (s *FlowerSet) Add(part FlowerPart, id, plantID int64) {
	switch p := part.(type) {
	case *MaleFlower:
		p.ID, p.PlantID = id, plantID
		s.Male = p
	case *FemaleFlower:
		p.ID, p.PlantID = id, plantID
		s.Female = p
	case *HermaphroditeFlower:
		p.ID, p.PlantID = id, plantID
		s.Hermaphrodite = p
	}
}

// PlantDetail is a plant with its family and flower parts.
type PlantDetail struct {
	Plant  Plant
	Family PlantFamily
	FlowerSet
}

// FlowerParts holds the sepal and petal attributes shared by every
// flower-part entity.
type FlowerParts struct {
	SepalArrangement Arrangement
	SepalRangeMin    *int
	SepalRangeMax    *int
	SepalsFused      bool

	PetalArrangement Arrangement
	PetalRangeMin    *int
	PetalRangeMax    *int
	PetalsFused      bool
}

// Normalize drops range bounds that carry no meaning for the arrangement:
// both bounds for NONE, the upper bound for INDEFINITE.
func (f *FlowerParts) Normalize() {
	f.SepalRangeMin, f.SepalRangeMax = normalizeRange(f.SepalArrangement, f.SepalRangeMin, f.SepalRangeMax)
	f.PetalRangeMin, f.PetalRangeMax = normalizeRange(f.PetalArrangement, f.PetalRangeMin, f.PetalRangeMax)
}

func normalizeRange(a Arrangement, lo, hi *int) (*int, *int) {
	switch a {
	case ArrangementNone:
		return nil, nil
	case ArrangementIndefinite:
		return lo, nil
	}
	return lo, hi
}

// Validate checks arrangements and range bounds. Field names are prefixed
// with prefix, e.g. "male_flower.sepal_range_min".
func (f *FlowerParts) Validate(prefix string) []FieldError {
	var errs []FieldError
	errs = append(errs, validateRange(prefix, "sepal", f.SepalArrangement, f.SepalRangeMin, f.SepalRangeMax)...)
	errs = append(errs, validateRange(prefix, "petal", f.PetalArrangement, f.PetalRangeMin, f.PetalRangeMax)...)
	return errs
}

func validateRange(prefix, part string, a Arrangement, lo, hi *int) []FieldError {
	var errs []FieldError
	field := func(name string) string { return prefix + "." + part + "_" + name }

	if !a.IsValid() {
		return append(errs, FieldError{Field: field("arrangement"), Message: fmt.Sprintf("invalid value %q", a)})
	}
	bounds := []struct {
		name string
		v    *int
	}{{"range_min", lo}, {"range_max", hi}}
	for _, b := range bounds {
		name, v := b.name, b.v
		if v != nil && (*v < 0 || *v > MaxPartCount) {
			errs = append(errs, FieldError{Field: field(name), Message: fmt.Sprintf("must be between 0 and %d", MaxPartCount)})
		}
	}
	if a == ArrangementRange && lo != nil && hi != nil && *lo > *hi {
		errs = append(errs, FieldError{Field: field("range_max"), Message: "must not be less than the minimum"})
	}
	return errs
}

// SepalDescription renders the sepal count for display.
func (f *FlowerParts) SepalDescription() string {
	desc := describeCount(f.SepalArrangement, f.SepalRangeMin, f.SepalRangeMax)
	if desc != "None" && f.SepalsFused {
		desc += " (fused/gamosepalous)"
	}
	return desc
}

// PetalDescription renders the petal count for display.
func (f *FlowerParts) PetalDescription() string {
	desc := describeCount(f.PetalArrangement, f.PetalRangeMin, f.PetalRangeMax)
	if desc != "None" && f.PetalsFused {
		desc += " (fused)"
	}
	return desc
}

func describeCount(a Arrangement, lo, hi *int) string {
	switch a {
	case ArrangementNone:
		return "None"
	case ArrangementIndefinite:
		return bound(lo) + "+"
	}
	if hi == nil || (lo != nil && *lo == *hi) {
		return bound(lo)
	}
	return bound(lo) + "-" + bound(hi)
}

func bound(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// FlowerPart is one of MaleFlower, FemaleFlower or HermaphroditeFlower.
type FlowerPart interface {
	Kind() FlowerPartKind
	Base() *FlowerParts
	Validate() []FieldError
	flowerPart()
}

// MaleFlower records the male flower of a BOTH plant.
type MaleFlower struct {
	ID      int64
	PlantID int64
	FlowerParts
	Stamens string
}

// FemaleFlower records the female flower of a BOTH plant.
type FemaleFlower struct {
	ID      int64
	PlantID int64
	FlowerParts
	Carpels string
}

// HermaphroditeFlower records the single flower of a HERMAPHRODITE plant.
type HermaphroditeFlower struct {
	ID      int64
	PlantID int64
	FlowerParts
	Stamens string
	Carpels string
}

func (*MaleFlower) Kind() FlowerPartKind          { return FlowerPartMale }
func (*FemaleFlower) Kind() FlowerPartKind        { return FlowerPartFemale }
func (*HermaphroditeFlower) Kind() FlowerPartKind { return FlowerPartHermaphrodite }

func (m *MaleFlower) Base() *FlowerParts          { return &m.FlowerParts }
func (f *FemaleFlower) Base() *FlowerParts        { return &f.FlowerParts }
func (h *HermaphroditeFlower) Base() *FlowerParts { return &h.FlowerParts }

func (*MaleFlower) flowerPart()          {}
func (*FemaleFlower) flowerPart()        {}
func (*HermaphroditeFlower) flowerPart() {}

func (m *MaleFlower) Validate() []FieldError {
	errs := m.FlowerParts.Validate(string(FlowerPartMale))
	return append(errs, validateDescriptor(FlowerPartMale, "stamens", m.Stamens)...)
}

func (f *FemaleFlower) Validate() []FieldError {
	errs := f.FlowerParts.Validate(string(FlowerPartFemale))
	return append(errs, validateDescriptor(FlowerPartFemale, "carpels", f.Carpels)...)
}

func (h *HermaphroditeFlower) Validate() []FieldError {
	errs := h.FlowerParts.Validate(string(FlowerPartHermaphrodite))
	errs = append(errs, validateDescriptor(FlowerPartHermaphrodite, "stamens", h.Stamens)...)
	return append(errs, validateDescriptor(FlowerPartHermaphrodite, "carpels", h.Carpels)...)
}

func validateDescriptor(kind FlowerPartKind, name, value string) []FieldError {
	switch {
	case value == "":
		return []FieldError{{Field: string(kind) + "." + name, Message: "required"}}
	case len([]rune(value)) > 255:
		return []FieldError{{Field: string(kind) + "." + name, Message: "must be at most 255 characters"}}
	}
	return nil
}

// ValidateFlowerParts checks that parts fit a plant of the given flower
// type: every kind is allowed, none repeats, and each part is valid.
func ValidateFlowerParts(flowerType FlowerType, parts []FlowerPart) error {
	var errs []FieldError
	seen := make(map[FlowerPartKind]bool, len(parts))

	for _, p := range parts {
		kind := p.Kind()
		if !flowerType.Allows(kind) {
			errs = append(errs, FieldError{Field: string(kind), Message: fmt.Sprintf("not allowed for flower type %s", flowerType)})
			continue
		}
		if seen[kind] {
			errs = append(errs, FieldError{Field: string(kind), Message: "duplicate flower part"})
			continue
		}
		seen[kind] = true
		errs = append(errs, p.Validate()...)
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
