package hustles

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/earnnest/earnnest-web/services/hustles HustlesGW

// HustlesGW represents the upstream API operations for the marketplace
type HustlesGW interface {
	GetRecommendations(ctx context.Context) ([]models.HustleOpportunity, error)
	GetUserPosted(ctx context.Context) ([]models.UserHustle, error)
	GetAdminPosted(ctx context.Context) ([]models.UserHustle, error)
	GetMyApplications(ctx context.Context) ([]models.HustleApplication, error)
	GetMyPosted(ctx context.Context) ([]models.UserHustle, error)

	CreateHustle(ctx context.Context, create *models.HustleCreate) (*models.UserHustle, error)
	UpdateHustle(ctx context.Context, hustleID string, update *models.HustleUpdate) (*models.UserHustle, error)
	DeleteHustle(ctx context.Context, hustleID string) error
	Apply(ctx context.Context, hustleID string, application *models.ApplicationDraft) error
}
