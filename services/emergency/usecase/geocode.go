package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/pkg/parse"
	"github.com/earnnest/earnnest-web/services/emergency"
)

// providerFunc is one geocoding provider call
type providerFunc func(ctx context.Context, query string) ([]models.GeocodeCandidate, error)

// attempt is one (provider, formatter) pair of the fallback chain
type attempt struct {
	provider string
	search   providerFunc
	format   func(query string) string
}

// minConfidence is the score below which even the chain's best candidate
// is treated as a miss
const minConfidence = 0.2

// attempts builds the chain of (provider, formatter) pairs: each provider
// with the verbatim query, with the configured region and country appended
// for bare neighbourhood or city names, and with the leading locality
// segment stripped off overly specific queries. Every pair is queried and
// the candidates compete on score; order only breaks ties.
func (uc *EmergencyUC) attempts() []attempt {
	region, country := uc.cfg.Geo.Region, uc.cfg.Geo.Country

	verbatim := func(query string) string { return query }
	withRegion := func(query string) string {
		return fmt.Sprintf("%s, %s, %s", query, region, country)
	}
	withCountry := func(query string) string {
		return fmt.Sprintf("%s, %s", query, country)
	}
	// "Shop 4, MG Road, Bengaluru" often fails while "MG Road, Bengaluru"
	// resolves. Yields an empty query when there is nothing to strip.
	stripLocality := func(query string) string {
		parts := strings.SplitN(query, ",", 2)
		if len(parts) < 2 {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}

	return []attempt{
		{provider: "nominatim", search: uc.gw.SearchNominatim, format: verbatim},
		{provider: "photon", search: uc.gw.SearchPhoton, format: verbatim},
		{provider: "nominatim", search: uc.gw.SearchNominatim, format: withRegion},
		{provider: "photon", search: uc.gw.SearchPhoton, format: withRegion},
		{provider: "nominatim", search: uc.gw.SearchNominatim, format: withCountry},
		{provider: "nominatim", search: uc.gw.SearchNominatim, format: stripLocality},
	}
}

// ResolveLocation geocodes a free-text query. Every (provider, formatter)
// pair in the chain is tried and all candidates are scored; the single
// best-scoring candidate across the whole chain wins, with earlier pairs
// preferred on ties. A raw "lat, lng" pair short-circuits everything.
// Results are cached so repeat lookups skip the providers entirely.
func (uc *EmergencyUC) ResolveLocation(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, emergency.ErrLocationNotFound
	}

	if lat, lng, ok := parse.LatLng(query); ok {
		return &models.ResolvedLocation{
			Location:    models.Location{Latitude: lat, Longitude: lng},
			DisplayName: query,
			Provider:    "coordinates",
			Confidence:  1,
		}, nil
	}

	if cached, err := uc.repo.GetCachedLocation(ctx, query); err != nil {
		logger.Warn("Geocode cache read failed", logger.Err(err))
	} else if cached != nil {
		return cached, nil
	}

	timeout := time.Duration(uc.cfg.Geo.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		best         *models.GeocodeCandidate
		bestScore    float64
		bestProvider string
	)

	for _, att := range uc.attempts() {
		formatted := att.format(query)
		if formatted == "" {
			continue
		}

		candidates, err := att.search(ctx, formatted)
		if err != nil {
			logger.Warn("Geocode attempt failed",
				logger.String("provider", att.provider),
				logger.String("query", formatted),
				logger.Err(err))
			continue
		}

		candidate, score := pickBest(query, candidates)
		if candidate == nil || score <= bestScore {
			continue
		}
		best, bestScore, bestProvider = candidate, score, att.provider
	}

	if best == nil || bestScore < minConfidence {
		return nil, emergency.ErrLocationNotFound
	}

	resolved := &models.ResolvedLocation{
		Location:    models.Location{Latitude: best.Latitude, Longitude: best.Longitude},
		DisplayName: best.DisplayName,
		Provider:    bestProvider,
		Confidence:  bestScore,
	}

	if err := uc.repo.CacheLocation(ctx, query, resolved); err != nil {
		logger.Warn("Geocode cache write failed", logger.Err(err))
	}
	return resolved, nil
}

// pickBest scores every candidate against the query and returns the highest.
// The score blends how many query tokens appear in the candidate's display
// name with the provider's own importance ranking.
func pickBest(query string, candidates []models.GeocodeCandidate) (*models.GeocodeCandidate, float64) {
	queryTokens := tokenize(query)

	var best *models.GeocodeCandidate
	bestScore := 0.0

	for i := range candidates {
		candidate := &candidates[i]
		score := 0.7*tokenMatch(queryTokens, candidate.DisplayName) + 0.3*clamp01(candidate.Importance)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, bestScore
}

// tokenMatch returns the fraction of query tokens present in the display name
func tokenMatch(queryTokens []string, displayName string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	haystack := strings.ToLower(displayName)
	matched := 0
	for _, token := range queryTokens {
		if strings.Contains(haystack, token) {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return r == ' ' || r == ','
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
