package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/earnnest/earnnest-web/internal/pkg/constants"
	"github.com/earnnest/earnnest-web/internal/pkg/database"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// GeoRepository caches geocoding and place-search results in Redis with a
// short TTL. A cache miss returns (nil, nil); only transport failures err.
type GeoRepository struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewGeoRepository creates a new geo cache repository
func NewGeoRepository(redisClient *database.RedisClient, cfg models.GeoConfig) *GeoRepository {
	return &GeoRepository{
		redisClient: redisClient,
		ttl:         time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// GetCachedLocation returns a previously resolved location for the query
func (r *GeoRepository) GetCachedLocation(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	key := fmt.Sprintf(constants.KeyGeocodeResult, normalizeQuery(query))

	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}

	var location models.ResolvedLocation
	if err := json.Unmarshal([]byte(data), &location); err != nil {
		return nil, fmt.Errorf("failed to decode cached location: %w", err)
	}
	return &location, nil
}

// CacheLocation stores a resolved location for the query
func (r *GeoRepository) CacheLocation(ctx context.Context, query string, location *models.ResolvedLocation) error {
	key := fmt.Sprintf(constants.KeyGeocodeResult, normalizeQuery(query))

	data, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	return r.redisClient.Set(ctx, key, data, r.ttl)
}

// GetCachedPlaces returns cached place results for a geohash cell and category
func (r *GeoRepository) GetCachedPlaces(ctx context.Context, cell, category string) ([]models.Place, error) {
	key := fmt.Sprintf(constants.KeyPlaceResults, cell, category)

	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read place cache: %w", err)
	}

	var places []models.Place
	if err := json.Unmarshal([]byte(data), &places); err != nil {
		return nil, fmt.Errorf("failed to decode cached places: %w", err)
	}
	return places, nil
}

// CachePlaces stores place results for a geohash cell and category
func (r *GeoRepository) CachePlaces(ctx context.Context, cell, category string, places []models.Place) error {
	key := fmt.Sprintf(constants.KeyPlaceResults, cell, category)

	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to encode places: %w", err)
	}
	return r.redisClient.Set(ctx, key, data, r.ttl)
}

// normalizeQuery collapses a free-text query into a stable cache key
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
