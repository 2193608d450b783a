package handlers

import (
	"time"

	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

// SystemResponse is the public representation of a hydroponic system.
// swagger:model SystemResponse
type SystemResponse struct {
	// Self link, built from the slug
	// example: http://localhost:8080/hydroponic-systems/tomato-tank/
	URL string `json:"url"`

	// example: 4b1c5f8e-9a57-4d5e-a2b6-3b9f4d0c7e21
	ID string `json:"id"`

	// example: Tomato Tank
	Name string `json:"name"`

	// example: NFT channel by the window
	Description string `json:"description"`

	// Owner username
	// example: grower_1
	Owner string `json:"owner"`

	// example: tomato-tank
	Slug string `json:"slug"`
}

// SystemDetailResponse adds the ten most recent measurements, newest first.
// swagger:model SystemDetailResponse
type SystemDetailResponse struct {
	SystemResponse
	LastMeasurements []MeasurementResponse `json:"last_measurements"`
}

// MeasurementResponse is the public representation of a measurement.
// swagger:model MeasurementResponse
type MeasurementResponse struct {
	// Self link, built from the id
	URL string `json:"url"`

	ID string `json:"id"`

	// Link to the parent system
	System string `json:"system"`

	// example: 21.5
	Temperature float64 `json:"temperature"`

	// example: 6.2
	PH float64 `json:"ph"`

	// example: 560
	TDS float64 `json:"tds"`

	Description string `json:"description"`

	// Set on creation, never changes
	Timestamp time.Time `json:"timestamp"`
}

func systemURL(base, slug string) string {
	return base + SystemsPath + slug + "/"
}

func measurementURL(base, id string) string {
	return base + MeasurementsPath + id + "/"
}

func newSystemResponse(base string, s models.SystemDB) SystemResponse {
	return SystemResponse{
		URL:         systemURL(base, s.Slug),
		ID:          s.SystemID.String(),
		Name:        s.Name,
		Description: s.Description,
		Owner:       s.OwnerUsername,
		Slug:        s.Slug,
	}
}

func newSystemDetailResponse(base string, d *models.SystemDetail) SystemDetailResponse {
	return SystemDetailResponse{
		SystemResponse:   newSystemResponse(base, d.System),
		LastMeasurements: newMeasurementResponses(base, d.LatestMeasurements),
	}
}

func newMeasurementResponse(base string, m models.MeasurementDB) MeasurementResponse {
	id := m.MeasurementID.String()
	return MeasurementResponse{
		URL:         measurementURL(base, id),
		ID:          id,
		System:      systemURL(base, m.SystemSlug),
		Temperature: m.Temperature,
		PH:          m.PH,
		TDS:         m.TDS,
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}
}

func newMeasurementResponses(base string, ms []models.MeasurementDB) []MeasurementResponse {
	out := make([]MeasurementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, newMeasurementResponse(base, m))
	}
	return out
}
