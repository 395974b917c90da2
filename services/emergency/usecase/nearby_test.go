package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/emergency/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func TestFindNearby_DeviceCoordinatesWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGeoGW(ctrl)
	mockRepo := mocks.NewMockGeoRepo(ctrl)
	uc := NewEmergencyUC(mockGW, mockRepo, testConfig())

	mockRepo.EXPECT().GetCachedPlaces(gomock.Any(), gomock.Any(), "hospital").Return(nil, nil)
	mockGW.EXPECT().SearchPlaces(gomock.Any(), gomock.Any(), 25.0, "hospital").Return([]models.Place{
		{Name: "Far Hospital", Latitude: 13.10, Longitude: 77.60},
		{Name: "Near Hospital", Latitude: 12.98, Longitude: 77.60},
	}, nil)
	mockRepo.EXPECT().CachePlaces(gomock.Any(), gomock.Any(), "hospital", gomock.Any()).Return(nil)

	view, err := uc.FindNearby(context.Background(), &models.NearbyRequest{
		Query:     "ignored when coordinates are present",
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
	})

	require.NoError(t, err)
	assert.Equal(t, "device", view.Location.Provider)
	assert.Equal(t, "hospital", view.Category)

	require.Len(t, view.Places, 2)
	assert.Equal(t, "Near Hospital", view.Places[0].Name)
	assert.Equal(t, "Far Hospital", view.Places[1].Name)
	assert.Less(t, view.Places[0].DistanceKm, view.Places[1].DistanceKm)
}

func TestFindNearby_CapsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGeoGW(ctrl)
	mockRepo := mocks.NewMockGeoRepo(ctrl)

	cfg := testConfig()
	cfg.Geo.MaxResults = 2
	uc := NewEmergencyUC(mockGW, mockRepo, cfg)

	places := []models.Place{
		{Name: "A", Latitude: 12.99, Longitude: 77.60},
		{Name: "B", Latitude: 13.05, Longitude: 77.60},
		{Name: "C", Latitude: 12.975, Longitude: 77.60},
	}
	mockRepo.EXPECT().GetCachedPlaces(gomock.Any(), gomock.Any(), "pharmacy").Return(nil, nil)
	mockGW.EXPECT().SearchPlaces(gomock.Any(), gomock.Any(), 25.0, "pharmacy").Return(places, nil)
	mockRepo.EXPECT().CachePlaces(gomock.Any(), gomock.Any(), "pharmacy", gomock.Any()).Return(nil)

	view, err := uc.FindNearby(context.Background(), &models.NearbyRequest{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
		Category:  "pharmacy",
	})

	require.NoError(t, err)
	require.Len(t, view.Places, 2)
	assert.Equal(t, "C", view.Places[0].Name)
	assert.Equal(t, "A", view.Places[1].Name)
}

func TestFindNearby_CachedPlacesSkipProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGeoGW(ctrl)
	mockRepo := mocks.NewMockGeoRepo(ctrl)
	uc := NewEmergencyUC(mockGW, mockRepo, testConfig())

	cached := []models.Place{{Name: "Cached Hospital", Latitude: 12.98, Longitude: 77.60}}
	mockRepo.EXPECT().GetCachedPlaces(gomock.Any(), gomock.Any(), "hospital").Return(cached, nil)

	view, err := uc.FindNearby(context.Background(), &models.NearbyRequest{
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
	})

	require.NoError(t, err)
	require.Len(t, view.Places, 1)
	assert.Equal(t, "Cached Hospital", view.Places[0].Name)
	// distance is recomputed per request even for cached entries
	assert.Greater(t, view.Places[0].DistanceKm, 0.0)
}

func TestFindNearby_FreeTextGoesThroughGeocoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockGeoGW(ctrl)
	mockRepo := mocks.NewMockGeoRepo(ctrl)
	uc := NewEmergencyUC(mockGW, mockRepo, testConfig())

	mockRepo.EXPECT().GetCachedLocation(gomock.Any(), "Koramangala").Return(&models.ResolvedLocation{
		Location:    models.Location{Latitude: 12.93, Longitude: 77.62},
		DisplayName: "Koramangala, Bengaluru",
		Provider:    "nominatim",
		Confidence:  0.8,
	}, nil)
	mockRepo.EXPECT().GetCachedPlaces(gomock.Any(), gomock.Any(), "hospital").Return(nil, nil)
	mockGW.EXPECT().SearchPlaces(gomock.Any(), models.Location{Latitude: 12.93, Longitude: 77.62}, 25.0, "hospital").
		Return([]models.Place{}, nil)
	mockRepo.EXPECT().CachePlaces(gomock.Any(), gomock.Any(), "hospital", gomock.Any()).Return(nil)

	view, err := uc.FindNearby(context.Background(), &models.NearbyRequest{Query: "Koramangala"})

	require.NoError(t, err)
	assert.Equal(t, "Koramangala, Bengaluru", view.Location.DisplayName)
	assert.Empty(t, view.Places)
}
