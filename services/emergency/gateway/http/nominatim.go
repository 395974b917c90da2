package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/earnnest/earnnest-web/internal/pkg/http"
	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	nrpkg "github.com/earnnest/earnnest-web/internal/pkg/newrelic"
)

// GeoGateway bundles the third-party geocoding and place-search providers.
// All three are public OSM-backed services; requests carry the configured
// User-Agent per their usage policies and no credentials.
type GeoGateway struct {
	nominatim *httpclient.Client
	photon    *httpclient.Client
	overpass  *httpclient.Client
	userAgent string
}

// NewGeoGateway creates a new geo provider gateway
func NewGeoGateway(cfg models.GeoConfig) *GeoGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &GeoGateway{
		nominatim: httpclient.NewClient(cfg.NominatimURL, timeout),
		photon:    httpclient.NewClient(cfg.PhotonURL, timeout),
		overpass:  httpclient.NewClient(cfg.OverpassURL, timeout),
		userAgent: cfg.UserAgent,
	}
}

// nominatimResult is one entry of a Nominatim /search response
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Importance  float64 `json:"importance"`
}

// SearchNominatim geocodes a free-text query against Nominatim
func (g *GeoGateway) SearchNominatim(ctx context.Context, query string) ([]models.GeocodeCandidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "5")
	params.Set("addressdetails", "0")

	var results []nominatimResult
	if err := g.getJSON(ctx, g.nominatim, "/search?"+params.Encode(), &results); err != nil {
		return nil, fmt.Errorf("nominatim search failed: %w", err)
	}

	candidates := make([]models.GeocodeCandidate, 0, len(results))
	for _, result := range results {
		lat, latErr := strconv.ParseFloat(result.Lat, 64)
		lon, lonErr := strconv.ParseFloat(result.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		candidates = append(candidates, models.GeocodeCandidate{
			DisplayName: result.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
			Importance:  result.Importance,
		})
	}
	return candidates, nil
}

// getJSON issues a GET with provider headers and decodes the JSON body
func (g *GeoGateway) getJSON(ctx context.Context, client *httpclient.Client, endpoint string, result interface{}) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, client.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return client.HTTPClient.Do(req)
	})
	if err != nil {
		logger.Warn("Geo provider request failed",
			logger.String("url", client.BaseURL+endpoint),
			logger.Err(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
