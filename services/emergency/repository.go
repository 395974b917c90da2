package emergency

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/earnnest/earnnest-web/services/emergency GeoRepo

// GeoRepo caches geocoding and place-search results. Third-party providers
// rate-limit aggressively, so repeat lookups within the TTL are served from
// cache; entity data is never cached here.
type GeoRepo interface {
	GetCachedLocation(ctx context.Context, query string) (*models.ResolvedLocation, error)
	CacheLocation(ctx context.Context, query string, location *models.ResolvedLocation) error

	GetCachedPlaces(ctx context.Context, cell, category string) ([]models.Place, error)
	CachePlaces(ctx context.Context, cell, category string, places []models.Place) error
}
