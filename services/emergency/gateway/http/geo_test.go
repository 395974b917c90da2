package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

func geoConfig(nominatimURL, photonURL, overpassURL string) models.GeoConfig {
	return models.GeoConfig{
		NominatimURL:   nominatimURL,
		PhotonURL:      photonURL,
		OverpassURL:    overpassURL,
		UserAgent:      "earnnest-web-test/1.0",
		TimeoutSeconds: 5,
	}
}

func TestSearchNominatim_ParsesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bengaluru", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "earnnest-web-test/1.0", r.Header.Get("User-Agent"))

		w.Write([]byte(`[
			{"display_name": "Bengaluru, Karnataka, India", "lat": "12.9716", "lon": "77.5946", "importance": 0.75},
			{"display_name": "bad coords", "lat": "not-a-number", "lon": "77.0", "importance": 0.1}
		]`))
	}))
	defer server.Close()

	gw := NewGeoGateway(geoConfig(server.URL, server.URL, server.URL))
	candidates, err := gw.SearchNominatim(context.Background(), "Bengaluru")

	require.NoError(t, err)
	// unparseable coordinates are dropped
	require.Len(t, candidates, 1)
	assert.Equal(t, "Bengaluru, Karnataka, India", candidates[0].DisplayName)
	assert.InDelta(t, 12.9716, candidates[0].Latitude, 0.0001)
	assert.InDelta(t, 0.75, candidates[0].Importance, 0.001)
}

func TestSearchNominatim_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	gw := NewGeoGateway(geoConfig(server.URL, server.URL, server.URL))
	_, err := gw.SearchNominatim(context.Background(), "Bengaluru")

	assert.Error(t, err)
}

func TestSearchPhoton_ParsesGeoJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		w.Write([]byte(`{"features": [
			{"geometry": {"coordinates": [77.5946, 12.9716]},
			 "properties": {"name": "Bengaluru", "state": "Karnataka", "country": "India"}}
		]}`))
	}))
	defer server.Close()

	gw := NewGeoGateway(geoConfig(server.URL, server.URL, server.URL))
	candidates, err := gw.SearchPhoton(context.Background(), "Bengaluru")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Bengaluru, Karnataka, India", candidates[0].DisplayName)
	// GeoJSON order is lon, lat
	assert.InDelta(t, 12.9716, candidates[0].Latitude, 0.0001)
	assert.InDelta(t, 77.5946, candidates[0].Longitude, 0.0001)
}

func TestSearchPlaces_ParsesNodesAndWays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interpreter", r.URL.Path)
		require.NoError(t, r.ParseForm())
		query := r.Form.Get("data")
		assert.Contains(t, query, `"amenity"="hospital"`)
		assert.Contains(t, query, "around:25000")

		w.Write([]byte(`{"elements": [
			{"lat": 12.98, "lon": 77.60, "tags": {"name": "City Hospital", "phone": "+91 80 1234", "emergency": "yes"}},
			{"center": {"lat": 12.95, "lon": 77.58}, "tags": {"name": "General Hospital", "addr:street": "MG Road", "addr:city": "Bengaluru"}},
			{"lat": 12.91, "lon": 77.55, "tags": {}}
		]}`))
	}))
	defer server.Close()

	gw := NewGeoGateway(geoConfig(server.URL, server.URL, server.URL))
	center := models.Location{Latitude: 12.97, Longitude: 77.59}
	places, err := gw.SearchPlaces(context.Background(), center, 25, "hospital")

	require.NoError(t, err)
	// the unnamed element is dropped
	require.Len(t, places, 2)

	assert.Equal(t, "City Hospital", places[0].Name)
	assert.Equal(t, "+91 80 1234", places[0].Phone)
	assert.Contains(t, places[0].Features, "24x7 emergency")

	assert.Equal(t, "General Hospital", places[1].Name)
	assert.Equal(t, "MG Road, Bengaluru", places[1].Address)
	assert.InDelta(t, 12.95, places[1].Latitude, 0.001)
}
