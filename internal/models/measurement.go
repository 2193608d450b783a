package models

import (
	"time"

	"github.com/google/uuid"
)

// LatestMeasurementsLimit is how many recent measurements a system detail embeds.
const LatestMeasurementsLimit = 10

// MeasurementDB represents a measurements row joined with its parent system.
type MeasurementDB struct {
	MeasurementID uuid.UUID `db:"measurement_id"`
	SystemID      uuid.UUID `db:"system_id"`
	SystemSlug    string    `db:"system_slug"`     // read-only, filled by joins
	SystemOwnerID uuid.UUID `db:"system_owner_id"` // read-only, filled by joins
	Temperature   float64   `db:"temperature"`
	PH            float64   `db:"ph"`
	TDS           float64   `db:"tds"`
	Description   string    `db:"description"`
	Timestamp     time.Time `db:"timestamp"` // set on insert, never updated
}
