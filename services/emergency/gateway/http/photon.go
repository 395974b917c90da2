package gateway_http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// photonResponse is a Photon /api GeoJSON response
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
		Properties struct {
			Name    string `json:"name"`
			City    string `json:"city"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// SearchPhoton geocodes a free-text query against Photon. Photon carries no
// importance score, so candidates get a flat mid-range one and ranking falls
// back to token matching.
func (g *GeoGateway) SearchPhoton(ctx context.Context, query string) ([]models.GeocodeCandidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "5")

	var response photonResponse
	if err := g.getJSON(ctx, g.photon, "/api?"+params.Encode(), &response); err != nil {
		return nil, fmt.Errorf("photon search failed: %w", err)
	}

	candidates := make([]models.GeocodeCandidate, 0, len(response.Features))
	for _, feature := range response.Features {
		if len(feature.Geometry.Coordinates) < 2 {
			continue
		}

		displayName := feature.Properties.Name
		for _, part := range []string{feature.Properties.City, feature.Properties.State, feature.Properties.Country} {
			if part != "" && part != displayName {
				displayName += ", " + part
			}
		}

		candidates = append(candidates, models.GeocodeCandidate{
			DisplayName: displayName,
			Latitude:    feature.Geometry.Coordinates[1],
			Longitude:   feature.Geometry.Coordinates[0],
			Importance:  0.5,
		})
	}
	return candidates, nil
}
