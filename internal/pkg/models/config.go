package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Geo      GeoConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// ShareBaseURL is the public site prefix used to build referral links
	ShareBaseURL string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// UpstreamConfig contains the EarnNest API connection configuration
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// GeoConfig contains geocoding and place-search configuration
type GeoConfig struct {
	NominatimURL    string
	PhotonURL       string
	OverpassURL     string
	UserAgent       string
	Country         string
	Region          string
	SearchRadiusKm  float64
	MaxResults      int
	TimeoutSeconds  int
	CacheTTLSeconds int
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
