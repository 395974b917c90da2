package usecase

import (
	"context"
	"sort"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/utils"
)

// placeCellPrecision is the geohash precision used for place cache keys.
// Five characters is a cell of a few kilometres, coarse enough that nearby
// users share cached results.
const placeCellPrecision = 5

// FindNearby resolves the request's location and returns the closest places
// of the requested category, sorted by distance. Device coordinates take
// precedence over the free-text query.
func (uc *EmergencyUC) FindNearby(ctx context.Context, req *models.NearbyRequest) (*models.NearbyView, error) {
	location, err := uc.resolveRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "hospital"
	}

	places, err := uc.lookupPlaces(ctx, location.Location, category)
	if err != nil {
		return nil, err
	}

	center := utils.GeoPointFromLocation(location.Location)
	for i := range places {
		places[i].DistanceKm = utils.CalculateDistance(center, utils.GeoPoint{
			Latitude:  places[i].Latitude,
			Longitude: places[i].Longitude,
		})
	}

	sort.Slice(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})

	if max := uc.cfg.Geo.MaxResults; max > 0 && len(places) > max {
		places = places[:max]
	}

	return &models.NearbyView{
		Location: *location,
		Category: category,
		Places:   places,
	}, nil
}

func (uc *EmergencyUC) resolveRequest(ctx context.Context, req *models.NearbyRequest) (*models.ResolvedLocation, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return &models.ResolvedLocation{
			Location: models.Location{
				Latitude:  *req.Latitude,
				Longitude: *req.Longitude,
			},
			DisplayName: "your location",
			Provider:    "device",
			Confidence:  1,
		}, nil
	}

	return uc.ResolveLocation(ctx, req.Query)
}

// lookupPlaces serves place results from the geohash-cell cache when fresh,
// falling back to the provider. Cached entries carry no distances; those are
// recomputed per request center.
func (uc *EmergencyUC) lookupPlaces(ctx context.Context, center models.Location, category string) ([]models.Place, error) {
	cell := utils.EncodeLocation(center, placeCellPrecision)

	if cached, err := uc.repo.GetCachedPlaces(ctx, cell, category); err != nil {
		logger.Warn("Place cache read failed", logger.Err(err))
	} else if cached != nil {
		return cached, nil
	}

	places, err := uc.gw.SearchPlaces(ctx, center, uc.cfg.Geo.SearchRadiusKm, category)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CachePlaces(ctx, cell, category, places); err != nil {
		logger.Warn("Place cache write failed", logger.Err(err))
	}
	return places, nil
}
