package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoProviderDefaults(t *testing.T) {
	os.Unsetenv("GEO_OVERPASS_URL")
	os.Unsetenv("GEO_NOMINATIM_URL")
	os.Unsetenv("GEO_PHOTON_URL")

	configs := InitConfig("")

	// The gateway appends the interpreter path, so the default must be a
	// bare host or requests land on a doubled path.
	assert.Equal(t, "https://overpass-api.de", configs.Geo.OverpassURL)
	assert.Equal(t, "https://overpass-api.de/api/interpreter",
		configs.Geo.OverpassURL+"/api/interpreter")
	assert.NotContains(t, configs.Geo.NominatimURL, "/search")
	assert.NotContains(t, configs.Geo.PhotonURL, "/api")
}

func TestGetEnvHelpers(t *testing.T) {
	os.Setenv("CONFIG_TEST_INT", "42")
	os.Setenv("CONFIG_TEST_BOOL", "true")
	defer os.Unsetenv("CONFIG_TEST_INT")
	defer os.Unsetenv("CONFIG_TEST_BOOL")

	assert.Equal(t, 42, GetEnvAsInt("CONFIG_TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("CONFIG_TEST_MISSING", 7))
	assert.True(t, GetEnvAsBool("CONFIG_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("CONFIG_TEST_MISSING", "fallback"))
}
