// Package flowerdetail converts the additional-details document stored on a
// plant submission into typed flower parts and back.
//
// The document is a JSON object. Flower measurements live under a key named
// for the flower part (male_flower, female_flower, hermaphrodite_flower) and
// the temporary image path under image_storage. Which part keys are read is
// decided by the submission's flower type; other part keys are ignored.
package flowerdetail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SillyFizy/grow/internal/domain"
)

// KeyImage is the document key holding the temporary image path.
const KeyImage = "image_storage"

// wireFlower is the JSON shape of one flower-part sub-document. Pointers
// distinguish absent keys from zero values.
type wireFlower struct {
	SepalArrangement *string `json:"sepal_arrangement,omitempty"`
	SepalRangeMin    *int    `json:"sepal_range_min"`
	SepalRangeMax    *int    `json:"sepal_range_max"`
	SepalsFused      *bool   `json:"sepals_fused,omitempty"`
	PetalArrangement *string `json:"petal_arrangement,omitempty"`
	PetalRangeMin    *int    `json:"petal_range_min"`
	PetalRangeMax    *int    `json:"petal_range_max"`
	PetalsFused      *bool   `json:"petals_fused,omitempty"`
	Stamens          *string `json:"stamens,omitempty"`
	Carpels          *string `json:"carpels,omitempty"`
}

// Decode validates doc against flowerType and returns the typed details.
// Missing part documents are not errors; an empty or null document decodes
// to empty details.
func Decode(doc json.RawMessage, flowerType domain.FlowerType) (domain.SubmissionDetails, error) {
	var details domain.SubmissionDetails

	if !flowerType.IsValid() {
		return details, domain.NewValidationError("flower_type", fmt.Sprintf("unrecognized flower type %q", flowerType))
	}

	fields, err := splitDocument(doc)
	if err != nil {
		return details, err
	}

	var errs []domain.FieldError

	if raw, ok := fields[KeyImage]; ok && !isNull(raw) {
		var path string
		if err := json.Unmarshal(raw, &path); err != nil {
			errs = append(errs, domain.FieldError{Field: KeyImage, Message: "must be a string"})
		} else {
			details.ImagePath = strings.TrimSpace(path)
		}
	}

	switch flowerType {
	case domain.FlowerTypeBoth:
		if w, ferrs := readPart(fields, domain.FlowerPartMale); w != nil {
			details.Male = &domain.MaleFlower{FlowerParts: w.parts(), Stamens: descriptor(w.Stamens)}
		} else {
			errs = append(errs, ferrs...)
		}
		if w, ferrs := readPart(fields, domain.FlowerPartFemale); w != nil {
			details.Female = &domain.FemaleFlower{FlowerParts: w.parts(), Carpels: descriptor(w.Carpels)}
		} else {
			errs = append(errs, ferrs...)
		}
	case domain.FlowerTypeHermaphrodite:
		if w, ferrs := readPart(fields, domain.FlowerPartHermaphrodite); w != nil {
			details.Hermaphrodite = &domain.HermaphroditeFlower{
				FlowerParts: w.parts(),
				Stamens:     descriptor(w.Stamens),
				Carpels:     descriptor(w.Carpels),
			}
		} else {
			errs = append(errs, ferrs...)
		}
	}

	if len(errs) == 0 {
		if err := domain.ValidateFlowerParts(flowerType, details.Parts()); err != nil {
			return domain.SubmissionDetails{}, err
		}
		return details, nil
	}
	return domain.SubmissionDetails{}, domain.NewValidationErrors(errs)
}

// Encode renders details as a document that Decode accepts.
func Encode(details domain.SubmissionDetails) (json.RawMessage, error) {
	doc := make(map[string]any, 3)

	if details.Male != nil {
		w := toWire(details.Male.FlowerParts)
		w.Stamens = &details.Male.Stamens
		doc[string(domain.FlowerPartMale)] = w
	}
	if details.Female != nil {
		w := toWire(details.Female.FlowerParts)
		w.Carpels = &details.Female.Carpels
		doc[string(domain.FlowerPartFemale)] = w
	}
	if details.Hermaphrodite != nil {
		w := toWire(details.Hermaphrodite.FlowerParts)
		w.Stamens = &details.Hermaphrodite.Stamens
		w.Carpels = &details.Hermaphrodite.Carpels
		doc[string(domain.FlowerPartHermaphrodite)] = w
	}
	if details.ImagePath != "" {
		doc[KeyImage] = details.ImagePath
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode flower details: %w", err)
	}
	return out, nil
}

// ----- Decoding helpers -----

func splitDocument(doc json.RawMessage) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || isNull(trimmed) {
		return fields, nil
	}
	if trimmed[0] != '{' {
		return nil, domain.NewValidationError("additional_details", "must be a JSON object")
	}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, domain.NewValidationError("additional_details", "must be a JSON object")
	}
	return fields, nil
}

// readPart decodes one part document. It returns nil with no errors when
// the part is absent, null or an empty object.
func readPart(fields map[string]json.RawMessage, kind domain.FlowerPartKind) (*wireFlower, []domain.FieldError) {
	raw, ok := fields[string(kind)]
	if !ok || isNull(raw) {
		return nil, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, []domain.FieldError{{Field: string(kind), Message: "must be a JSON object"}}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, []domain.FieldError{{Field: string(kind), Message: "must be a JSON object"}}
	}
	if len(probe) == 0 {
		return nil, nil
	}

	var w wireFlower
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, []domain.FieldError{typeError(kind, err)}
	}
	return &w, nil
}

func typeError(kind domain.FlowerPartKind, err error) domain.FieldError {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return domain.FieldError{Field: string(kind) + "." + te.Field, Message: "expected " + te.Type.String()}
	}
	return domain.FieldError{Field: string(kind), Message: "malformed flower details"}
}

func (w *wireFlower) parts() domain.FlowerParts {
	p := domain.FlowerParts{
		SepalArrangement: arrangement(w.SepalArrangement),
		SepalRangeMin:    w.SepalRangeMin,
		SepalRangeMax:    w.SepalRangeMax,
		SepalsFused:      w.SepalsFused != nil && *w.SepalsFused,
		PetalArrangement: arrangement(w.PetalArrangement),
		PetalRangeMin:    w.PetalRangeMin,
		PetalRangeMax:    w.PetalRangeMax,
		PetalsFused:      w.PetalsFused != nil && *w.PetalsFused,
	}
	p.Normalize()
	return p
}

// arrangement defaults to RANGE for payloads written before arrangements
// existed.
func arrangement(v *string) domain.Arrangement {
	if v == nil || strings.TrimSpace(*v) == "" {
		return domain.ArrangementRange
	}
	return domain.Arrangement(strings.ToUpper(strings.TrimSpace(*v)))
}

func descriptor(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return domain.NotSpecified
	}
	return strings.TrimSpace(*v)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ----- Encoding helpers -----

func toWire(p domain.FlowerParts) wireFlower {
	sepal := string(p.SepalArrangement)
	petal := string(p.PetalArrangement)
	sepalsFused := p.SepalsFused
	petalsFused := p.PetalsFused
	return wireFlower{
		SepalArrangement: &sepal,
		SepalRangeMin:    p.SepalRangeMin,
		SepalRangeMax:    p.SepalRangeMax,
		SepalsFused:      &sepalsFused,
		PetalArrangement: &petal,
		PetalRangeMin:    p.PetalRangeMin,
		PetalRangeMax:    p.PetalRangeMax,
		PetalsFused:      &petalsFused,
	}
}
