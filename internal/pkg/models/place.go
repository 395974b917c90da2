package models

// Location represents a geographical point
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeCandidate is one raw match from a geocoding provider, before
// scoring picks the best
type GeocodeCandidate struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
	Importance  float64
}

// ResolvedLocation is the outcome of geocoding a free-text query
type ResolvedLocation struct {
	Location
	DisplayName string  `json:"display_name"`
	Provider    string  `json:"provider"`
	Confidence  float64 `json:"confidence"`
}

// Place is a nearby-place result. Transient: derived from a third-party
// place API for the current request only, never persisted as an entity.
type Place struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Category    string   `json:"category"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	DistanceKm  float64  `json:"distance_km"`
	Specialties []string `json:"specialties,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// NearbyRequest is the lookup form: either free-text query or device
// coordinates, plus the service category to search for.
type NearbyRequest struct {
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Category  string   `json:"category"`
}

// NearbyView is the rendered lookup result
type NearbyView struct {
	Location ResolvedLocation `json:"location"`
	Category string           `json:"category"`
	Places   []Place          `json:"places"`
}
