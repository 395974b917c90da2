package config

import (
	"log"
	"os"
	"strconv"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "earnnest-web")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")
	configs.App.ShareBaseURL = GetEnv("APP_SHARE_BASE_URL", "https://earnnest.app")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// Upstream EarnNest API config
	configs.Upstream.BaseURL = GetEnv("EARNNEST_API_URL", "http://localhost:8001")
	configs.Upstream.TimeoutSeconds = GetEnvAsInt("EARNNEST_API_TIMEOUT", 30)

	// Geocoding / place-search config
	configs.Geo.NominatimURL = GetEnv("GEO_NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	configs.Geo.PhotonURL = GetEnv("GEO_PHOTON_URL", "https://photon.komoot.io")
	// Base URL only; the gateway appends /api/interpreter
	configs.Geo.OverpassURL = GetEnv("GEO_OVERPASS_URL", "https://overpass-api.de")
	configs.Geo.UserAgent = GetEnv("GEO_USER_AGENT", "earnnest-web/1.0")
	configs.Geo.Country = GetEnv("GEO_COUNTRY", "India")
	configs.Geo.Region = GetEnv("GEO_REGION", "Karnataka")
	configs.Geo.SearchRadiusKm = GetEnvAsFloat("GEO_SEARCH_RADIUS_KM", 25.0)
	configs.Geo.MaxResults = GetEnvAsInt("GEO_MAX_RESULTS", 10)
	configs.Geo.TimeoutSeconds = GetEnvAsInt("GEO_TIMEOUT", 10)
	configs.Geo.CacheTTLSeconds = GetEnvAsInt("GEO_CACHE_TTL", 600)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
