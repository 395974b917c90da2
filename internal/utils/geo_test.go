package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

func TestCalculateDistance_SamePointIsZero(t *testing.T) {
	point := GeoPoint{Latitude: 12.9716, Longitude: 77.5946}
	assert.InDelta(t, 0, CalculateDistance(point, point), 0.0001)
}

func TestCalculateDistance_OneDegreeLatitude(t *testing.T) {
	a := GeoPoint{Latitude: 12.0, Longitude: 77.0}
	b := GeoPoint{Latitude: 13.0, Longitude: 77.0}

	// one degree of latitude is roughly 111 km
	assert.InDelta(t, 111.2, CalculateDistance(a, b), 0.5)
}

func TestCalculateDistance_IsSymmetric(t *testing.T) {
	bangalore := GeoPoint{Latitude: 12.9716, Longitude: 77.5946}
	mysore := GeoPoint{Latitude: 12.2958, Longitude: 76.6394}

	assert.InDelta(t,
		CalculateDistance(bangalore, mysore),
		CalculateDistance(mysore, bangalore),
		0.0001)
}

func TestEncodeLocation(t *testing.T) {
	location := models.Location{Latitude: 12.9716, Longitude: 77.5946}

	hash := EncodeLocation(location, 9)
	assert.Len(t, hash, 9)

	// Nearby points share the coarser cache cell, distant ones do not.
	nearby := models.Location{Latitude: 12.9720, Longitude: 77.5950}
	assert.Equal(t, EncodeLocation(location, 5), EncodeLocation(nearby, 5))

	mumbai := models.Location{Latitude: 19.0760, Longitude: 72.8777}
	assert.NotEqual(t, EncodeLocation(location, 5), EncodeLocation(mumbai, 5))
}
