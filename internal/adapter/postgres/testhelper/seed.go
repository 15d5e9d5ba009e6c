package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SillyFizy/grow/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user with the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	u := domain.User{
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		Role:         role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Email, u.PasswordHash, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedFamily creates a plant family with unique names.
func SeedFamily(t *testing.T, pool *pgxpool.Pool) domain.PlantFamily {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	f := domain.PlantFamily{
		NameArabic:     "فصيلة " + suffix,
		NameEnglish:    "Family " + suffix,
		NameScientific: "Familiaceae " + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO plant_families (name_arabic, name_english, name_scientific)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		f.NameArabic, f.NameEnglish, f.NameScientific,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFamily: %v", err)
	}
	return f
}

// SeedPlant creates a plant without flower parts in the given family.
func SeedPlant(t *testing.T, pool *pgxpool.Pool, familyID int64, flowerType domain.FlowerType) domain.Plant {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	p := domain.Plant{
		NameArabic:     "نبتة " + suffix,
		NameEnglish:    "Plant " + suffix,
		NameScientific: "Planta " + suffix,
		FamilyID:       familyID,
		Classification: "Herb",
		CotyledonType:  domain.CotyledonDi,
		FlowerType:     flowerType,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO plants (name_arabic, name_english, name_scientific, family_id, classification, cotyledon_type, flower_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.NameArabic, p.NameEnglish, p.NameScientific, p.FamilyID, p.Classification,
		string(p.CotyledonType), string(p.FlowerType),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPlant: %v", err)
	}
	return p
}

// SeedSubmission creates a pending submission. details may be nil.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, submitterID uuid.UUID, familyID int64, flowerType domain.FlowerType, details json.RawMessage) domain.PlantSubmission {
	t.Helper()
	ctx := context.Background()

	if details == nil {
		details = json.RawMessage(`{}`)
	}

	suffix := UniqueSuffix()
	s := domain.PlantSubmission{
		SubmitterID:       submitterID,
		NameArabic:        "مقترح " + suffix,
		NameEnglish:       "Proposal " + suffix,
		NameScientific:    "Propositum " + suffix,
		FamilyID:          familyID,
		Classification:    "Shrub",
		SeedShapeArabic:   "كروي",
		CotyledonType:     domain.CotyledonDi,
		FlowerType:        flowerType,
		Status:            domain.SubmissionPending,
		AdditionalDetails: details,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO plant_submissions
		   (submitter_id, name_arabic, name_english, name_scientific, family_id, classification,
		    seed_shape_arabic, cotyledon_type, flower_type, additional_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, submitted_at, updated_at`,
		s.SubmitterID, s.NameArabic, s.NameEnglish, s.NameScientific, s.FamilyID, s.Classification,
		s.SeedShapeArabic, string(s.CotyledonType), string(s.FlowerType), []byte(s.AdditionalDetails),
	).Scan(&s.ID, &s.SubmittedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}
	return s
}
