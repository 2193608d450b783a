package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: grower_1
	Username string `json:"username"`

	// Email, unique case-insensitively
	// required: true
	// example: grower@example.com
	Email string `json:"email"`

	// Password, stored hashed only
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: grower_1
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// SystemRequest is the writable part of a hydroponic system.
// Any other key (url, id, owner, slug, last_measurements) is ignored.
// swagger:model SystemRequest
type SystemRequest struct {
	// Name, at most 70 characters
	// required: true
	// example: Tomato Tank
	Name *string `json:"name"`

	// Description
	// example: NFT channel by the window
	Description *string `json:"description"`
}

// MeasurementRequest is the writable part of a measurement.
// swagger:model MeasurementRequest
type MeasurementRequest struct {
	// System URL or slug
	// required: true
	// example: http://localhost:8080/hydroponic-systems/tomato-tank/
	System *string `json:"system"`

	// Water temperature
	// required: true
	// example: 21.5
	Temperature Number `json:"temperature" swaggertype:"number"`

	// Acidity
	// required: true
	// example: 6.2
	PH Number `json:"ph" swaggertype:"number"`

	// Total dissolved solids
	// required: true
	// example: 560
	TDS Number `json:"tds" swaggertype:"number"`

	// Description
	// example: after nutrient top-up
	Description *string `json:"description"`
}
