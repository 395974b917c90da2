package constants

// Redis key formats
const (
	// Geocoding cache
	KeyGeocodeResult = "geo:resolve:%s" // Format: geo:resolve:{normalized query}
	KeyPlaceResults  = "geo:places:%s:%s" // Format: geo:places:{geohash}:{category}
)
