package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemNameMaxLength is the longest accepted hydroponic system name.
const SystemNameMaxLength = 70

// SystemDB represents a hydroponic_systems row joined with its owner's username.
type SystemDB struct {
	SystemID      uuid.UUID `db:"system_id"`
	OwnerID       uuid.UUID `db:"owner_id"`
	OwnerUsername string    `db:"owner_username"` // read-only, filled by joins
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Slug          string    `db:"slug"` // unique across all owners
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// SystemDetail is a system together with its most recent measurements,
// newest first.
type SystemDetail struct {
	System             SystemDB
	LatestMeasurements []MeasurementDB
}
