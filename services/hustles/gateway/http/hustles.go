package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/earnnest/earnnest-web/internal/pkg/http"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// HustlesGateway is the HTTP client for the EarnNest API's marketplace
// endpoints
type HustlesGateway struct {
	client *httpclient.BearerClient
}

// NewHustlesGateway creates a new marketplace gateway
func NewHustlesGateway(baseURL string, timeout time.Duration) *HustlesGateway {
	return &HustlesGateway{
		client: httpclient.NewBearerClient("earnnest-api", baseURL, timeout),
	}
}

// GetRecommendations fetches curated gig recommendations for the user
func (g *HustlesGateway) GetRecommendations(ctx context.Context) ([]models.HustleOpportunity, error) {
	var recommendations []models.HustleOpportunity
	if err := g.client.GetJSON(ctx, "/api/hustles/recommendations", &recommendations); err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	return recommendations, nil
}

// GetUserPosted fetches all active community-posted hustles
func (g *HustlesGateway) GetUserPosted(ctx context.Context) ([]models.UserHustle, error) {
	var hustleList []models.UserHustle
	if err := g.client.GetJSON(ctx, "/api/hustles/user-posted", &hustleList); err != nil {
		return nil, fmt.Errorf("failed to fetch user-posted hustles: %w", err)
	}
	return hustleList, nil
}

// GetAdminPosted fetches verified admin-posted hustles
func (g *HustlesGateway) GetAdminPosted(ctx context.Context) ([]models.UserHustle, error) {
	var hustleList []models.UserHustle
	if err := g.client.GetJSON(ctx, "/api/hustles/admin-posted", &hustleList); err != nil {
		return nil, fmt.Errorf("failed to fetch admin-posted hustles: %w", err)
	}
	return hustleList, nil
}

// GetMyApplications fetches the user's own applications
func (g *HustlesGateway) GetMyApplications(ctx context.Context) ([]models.HustleApplication, error) {
	var applications []models.HustleApplication
	if err := g.client.GetJSON(ctx, "/api/hustles/my-applications", &applications); err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return applications, nil
}

// GetMyPosted fetches the hustles the user has posted
func (g *HustlesGateway) GetMyPosted(ctx context.Context) ([]models.UserHustle, error) {
	var hustleList []models.UserHustle
	if err := g.client.GetJSON(ctx, "/api/hustles/my-posted", &hustleList); err != nil {
		return nil, fmt.Errorf("failed to fetch posted hustles: %w", err)
	}
	return hustleList, nil
}

// CreateHustle posts a new hustle
func (g *HustlesGateway) CreateHustle(ctx context.Context, create *models.HustleCreate) (*models.UserHustle, error) {
	var hustle models.UserHustle
	if err := g.client.PostJSON(ctx, "/api/hustles/create", create, &hustle); err != nil {
		return nil, fmt.Errorf("failed to create hustle: %w", err)
	}
	return &hustle, nil
}

// UpdateHustle sends hustle edits upstream
func (g *HustlesGateway) UpdateHustle(ctx context.Context, hustleID string, update *models.HustleUpdate) (*models.UserHustle, error) {
	var hustle models.UserHustle
	endpoint := fmt.Sprintf("/api/hustles/%s", hustleID)
	if err := g.client.PutJSON(ctx, endpoint, update, &hustle); err != nil {
		return nil, fmt.Errorf("failed to update hustle: %w", err)
	}
	return &hustle, nil
}

// DeleteHustle removes a hustle
func (g *HustlesGateway) DeleteHustle(ctx context.Context, hustleID string) error {
	endpoint := fmt.Sprintf("/api/hustles/%s", hustleID)
	if err := g.client.DeleteJSON(ctx, endpoint, nil); err != nil {
		return fmt.Errorf("failed to delete hustle: %w", err)
	}
	return nil
}

// Apply submits an application against a hustle
func (g *HustlesGateway) Apply(ctx context.Context, hustleID string, application *models.ApplicationDraft) error {
	endpoint := fmt.Sprintf("/api/hustles/%s/apply", hustleID)
	if err := g.client.PostJSON(ctx, endpoint, application, nil); err != nil {
		return fmt.Errorf("failed to apply: %w", err)
	}
	return nil
}
