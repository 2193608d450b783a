package models

import "time"

// Measurement event operations.
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// MeasurementEvent is published to Kafka after a measurement is persisted or removed.
type MeasurementEvent struct {
	EventID       string    `json:"event_id"`       // Unique identifier of this event
	Operation     string    `json:"operation"`      // created, updated or deleted
	MeasurementID string    `json:"measurement_id"` // Identifier of the affected measurement
	SystemSlug    string    `json:"system_slug"`    // Slug of the parent system
	OwnerID       string    `json:"owner_id"`       // Owner of the parent system
	Temperature   float64   `json:"temperature"`
	PH            float64   `json:"ph"`
	TDS           float64   `json:"tds"`
	Timestamp     time.Time `json:"timestamp"`   // Measurement timestamp
	OccurredAt    time.Time `json:"occurred_at"` // When the operation happened
}
