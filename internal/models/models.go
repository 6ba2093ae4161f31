package models

// ===== Ask Models =====

// AskRequest represents a health question, optionally with the caller's position
type AskRequest struct {
	Text      string   `json:"text" example:"पेट दर्द है"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90" example:"28.6"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180" example:"77.2"`
}

// HasLocation reports whether both coordinates were supplied
func (r *AskRequest) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// AskResponse represents the assistant's answer
type AskResponse struct {
	Answer string `json:"answer"`
}

// ===== Nearby Models =====

// NearbyRequest represents a nearby-places lookup
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90" example:"28.6"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180" example:"77.2"`
	PlaceType string   `json:"place_type" binding:"required" example:"hospital"`
}

// Place represents a single point of interest returned to the caller
type Place struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Rating  string `json:"rating"` // always "N/A", the geodata source has no ratings

	// Position is kept for distance ordering only.
	Lat float64 `json:"-"`
	Lon float64 `json:"-"`
}

// NearbyResponse represents the nearby-places result
type NearbyResponse struct {
	Places []Place `json:"places"`
}

// ===== Misc Response Models =====

// RootResponse is returned by the welcome endpoint
type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}
