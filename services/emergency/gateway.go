package emergency

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/earnnest/earnnest-web/services/emergency GeoGW

// GeoGW represents the third-party geocoding and place-search providers
type GeoGW interface {
	SearchNominatim(ctx context.Context, query string) ([]models.GeocodeCandidate, error)
	SearchPhoton(ctx context.Context, query string) ([]models.GeocodeCandidate, error)
	SearchPlaces(ctx context.Context, center models.Location, radiusKm float64, category string) ([]models.Place, error)
}
