package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	nrpkg "github.com/earnnest/earnnest-web/internal/pkg/newrelic"
)

// categoryTags maps a lookup category to its OSM amenity tag
var categoryTags = map[string]string{
	"hospital":     "hospital",
	"clinic":       "clinic",
	"pharmacy":     "pharmacy",
	"police":       "police",
	"fire_station": "fire_station",
	"atm":          "atm",
	"bank":         "bank",
	"fuel":         "fuel",
	"shelter":      "shelter",
}

// overpassResponse is an Overpass interpreter response. Ways carry their
// coordinates under center, nodes inline.
type overpassResponse struct {
	Elements []struct {
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// SearchPlaces queries Overpass for amenities of the category around the
// center. Unnamed elements are dropped; distance is filled in by the caller.
func (g *GeoGateway) SearchPlaces(ctx context.Context, center models.Location, radiusKm float64, category string) ([]models.Place, error) {
	tag, ok := categoryTags[category]
	if !ok {
		tag = categoryTags["hospital"]
	}

	radiusMeters := int(radiusKm * 1000)
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"=%q](around:%d,%f,%f);
  way["amenity"=%q](around:%d,%f,%f);
);
out center tags;`,
		tag, radiusMeters, center.Latitude, center.Longitude,
		tag, radiusMeters, center.Latitude, center.Longitude)

	form := url.Values{}
	form.Set("data", query)

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost,
		g.overpass.BaseURL+"/api/interpreter", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return g.overpass.HTTPClient.Do(req)
	})
	if err != nil {
		logger.Warn("Overpass request failed", logger.Err(err))
		return nil, fmt.Errorf("overpass search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("overpass returned %d", resp.StatusCode)
	}

	var response overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("overpass response decode failed: %w", err)
	}

	places := make([]models.Place, 0, len(response.Elements))
	for _, element := range response.Elements {
		name := element.Tags["name"]
		if name == "" {
			continue
		}

		lat, lon := element.Lat, element.Lon
		if element.Center != nil {
			lat, lon = element.Center.Lat, element.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}

		place := models.Place{
			Name:      name,
			Address:   buildAddress(element.Tags),
			Phone:     firstTag(element.Tags, "phone", "contact:phone"),
			Category:  category,
			Latitude:  lat,
			Longitude: lon,
		}
		if speciality := element.Tags["healthcare:speciality"]; speciality != "" {
			place.Specialties = strings.Split(speciality, ";")
		}
		if element.Tags["emergency"] == "yes" {
			place.Features = append(place.Features, "24x7 emergency")
		}
		places = append(places, place)
	}
	return places, nil
}

func buildAddress(tags map[string]string) string {
	parts := make([]string, 0, 4)
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:suburb", "addr:city"} {
		if value := tags[key]; value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, ", ")
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := tags[key]; value != "" {
			return value
		}
	}
	return ""
}
