package emergency

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/earnnest/earnnest-web/services/emergency EmergencyUC

// EmergencyUC represents the emergency-service lookup usecase interface
type EmergencyUC interface {
	// FindNearby resolves the request's location (device coordinates win
	// over free text) and returns the closest matching places.
	FindNearby(ctx context.Context, req *models.NearbyRequest) (*models.NearbyView, error)

	// ResolveLocation geocodes a free-text query through the provider
	// fallback chain.
	ResolveLocation(ctx context.Context, query string) (*models.ResolvedLocation, error)
}
