package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// auditTimeLayout is used for timestamps written into admin notes.
const auditTimeLayout = "2006-01-02 15:04:05 MST"

// PlantSubmission is a community proposal for a new plant. It copies the
// descriptive fields of Plant because the plant does not exist yet.
type PlantSubmission struct {
	ID               int64
	SubmitterID      uuid.UUID
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
	Status           SubmissionStatus
	// AdminNotes is an append-only audit log.
	AdminNotes string
	// AdditionalDetails is the stored flower-measurement document. It is
	// only interpreted through the flowerdetail codec.
	AdditionalDetails json.RawMessage
	SubmittedAt       time.Time
	UpdatedAt         time.Time
}

// IsPending reports whether the submission can still be moderated.
func (s *PlantSubmission) IsPending() bool { return s.Status == SubmissionPending }

// NewPlant copies the descriptive fields of the submission into a plant
// that has not been stored yet.
func (s *PlantSubmission) NewPlant() Plant {
	return Plant{
		NameArabic:       s.NameArabic,
		NameEnglish:      s.NameEnglish,
		NameScientific:   s.NameScientific,
		FamilyID:         s.FamilyID,
		Classification:   s.Classification,
		Description:      s.Description,
		SeedShapeArabic:  s.SeedShapeArabic,
		SeedShapeEnglish: s.SeedShapeEnglish,
		CotyledonType:    s.CotyledonType,
		FlowerType:       s.FlowerType,
	}
}

// SubmissionDetails is the typed form of a submission's additional details.
// At most the parts allowed by the flower type are set.
type SubmissionDetails struct {
	Male          *MaleFlower
	Female        *FemaleFlower
	Hermaphrodite *HermaphroditeFlower
	// ImagePath is the temporary blob path of the uploaded image, if any.
	ImagePath string
}

// Parts returns the populated flower parts in a stable order.
func (d SubmissionDetails) Parts() []FlowerPart {
	parts := make([]FlowerPart, 0, 2)
	if d.Male != nil {
		parts = append(parts, d.Male)
	}
	if d.Female != nil {
		parts = append(parts, d.Female)
	}
	if d.Hermaphrodite != nil {
		parts = append(parts, d.Hermaphrodite)
	}
	return parts
}

// HasImage reports whether a temporary image was uploaded.
func (d SubmissionDetails) HasImage() bool { return d.ImagePath != "" }

// ApprovalNote is the audit line appended when a submission is promoted.
func ApprovalNote(plantID int64, at time.Time) string {
	return fmt.Sprintf("\nApproved and created plant ID: %d on %s", plantID, at.UTC().Format(auditTimeLayout))
}

// RejectionNote is the audit line appended when a submission is rejected.
func RejectionNote(at time.Time) string {
	return "\nRejected on " + at.UTC().Format(auditTimeLayout)
}

// ImageErrorNote is the audit line appended when the submission image could
// not be moved to permanent storage.
func ImageErrorNote(path string, err error) string {
	return fmt.Sprintf("\nError processing image %s: %v", path, err)
}

// PromotionResult is the outcome of promoting a single submission.
type PromotionResult struct {
	SubmissionID int64
	PlantID      int64
	// ImageError is set when the plant was created without its image.
	ImageError string
}

// PromotionFailure records why one submission of a batch was not promoted.
type PromotionFailure struct {
	ID     int64
	Reason string
}

// BatchResult summarizes a batch promotion. Submissions that were no longer
// pending appear in neither list.
type BatchResult struct {
	Succeeded []PromotionResult
	Failed    []PromotionFailure
}

// PlantIDs returns the ids of the plants created by the batch.
func (r *BatchResult) PlantIDs() []int64 {
	ids := make([]int64, len(r.Succeeded))
	for i, s := range r.Succeeded {
		ids[i] = s.PlantID
	}
	return ids
}
