package domain

import "github.com/google/uuid"

// PlantFilter contains filtering, search and pagination parameters for the
// plant catalog. Filters and field-specific search terms are AND-combined;
// Query is matched against every name field and classification with OR.
type PlantFilter struct {
	FamilyID       *int64
	CotyledonType  *CotyledonType
	FlowerType     *FlowerType
	Classification *string

	Query                  *string
	Name                   *string
	ClassificationContains *string

	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

// FamilyFilter contains search and ordering parameters for families.
type FamilyFilter struct {
	Search   *string
	SortBy   string
	SortDesc bool
}

// LocationFilter selects the sightings of one user.
type LocationFilter struct {
	UserID   uuid.UUID
	PlantID  *int64
	SortBy   string
	SortDesc bool
}

// SubmissionFilter selects submissions for moderation or for their author.
type SubmissionFilter struct {
	Status      *SubmissionStatus
	SubmitterID *uuid.UUID
	Limit       int
	Offset      int
}
