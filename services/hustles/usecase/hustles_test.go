package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/hustles/mocks"
)

func expectFullView(mockGW *mocks.MockHustlesGW) {
	mockGW.EXPECT().GetRecommendations(gomock.Any()).Return([]models.HustleOpportunity{}, nil)
	mockGW.EXPECT().GetUserPosted(gomock.Any()).Return([]models.UserHustle{}, nil)
	mockGW.EXPECT().GetAdminPosted(gomock.Any()).Return([]models.UserHustle{}, nil)
	mockGW.EXPECT().GetMyApplications(gomock.Any()).Return([]models.HustleApplication{}, nil)
	mockGW.EXPECT().GetMyPosted(gomock.Any()).Return([]models.UserHustle{}, nil)
}

func TestGetHustlesView_FailedSectionIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	mockGW.EXPECT().GetRecommendations(gomock.Any()).Return(nil, errors.New("recommendations down"))
	mockGW.EXPECT().GetUserPosted(gomock.Any()).Return([]models.UserHustle{{ID: "hustle-1", Title: "Tutoring"}}, nil)
	mockGW.EXPECT().GetAdminPosted(gomock.Any()).Return([]models.UserHustle{}, nil)
	mockGW.EXPECT().GetMyApplications(gomock.Any()).Return([]models.HustleApplication{}, nil)
	mockGW.EXPECT().GetMyPosted(gomock.Any()).Return([]models.UserHustle{}, nil)

	view, err := uc.GetHustlesView(context.Background())

	require.NoError(t, err)
	assert.Empty(t, view.Recommendations)
	assert.Len(t, view.UserPosted, 1)
	assert.Contains(t, view.Errors, "recommendations")
	assert.NotContains(t, view.Errors, "user_posted")
}

func TestSubmitHustle_ParsesContactAndLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	mockGW.EXPECT().CreateHustle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, create *models.HustleCreate) (*models.UserHustle, error) {
			assert.Equal(t, models.ContactInfo{Email: "gigs@example.com"}, create.ContactInfo)
			require.NotNil(t, create.Location)
			assert.Equal(t, "Indiranagar", create.Location.Area)
			assert.Equal(t, "Bangalore", create.Location.City)
			assert.Equal(t, "Karnataka", create.Location.State)
			assert.Equal(t, []string{"writing", "editing"}, create.RequiredSkills)
			return &models.UserHustle{ID: "hustle-new"}, nil
		})
	expectFullView(mockGW)

	_, err := uc.SubmitHustle(context.Background(), &models.HustleDraft{
		Title:          "Content writer",
		Description:    "Write blog posts",
		Category:       "freelancing",
		PayRate:        "500",
		PayType:        "per_task",
		RequiredSkills: "writing, editing",
		Location:       "Indiranagar, Bangalore, Karnataka",
		ContactInfo:    "gigs@example.com",
	})

	require.NoError(t, err)
}

func TestSubmitHustle_RemoteNeedsNoLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	mockGW.EXPECT().CreateHustle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, create *models.HustleCreate) (*models.UserHustle, error) {
			assert.Nil(t, create.Location)
			assert.True(t, create.IsRemote)
			return &models.UserHustle{ID: "hustle-new"}, nil
		})
	expectFullView(mockGW)

	_, err := uc.SubmitHustle(context.Background(), &models.HustleDraft{
		Title:       "Online survey taker",
		Description: "Remote micro tasks",
		PayRate:     "100",
		IsRemote:    true,
		ContactInfo: "https://example.com/apply",
	})

	require.NoError(t, err)
}

func TestSubmitHustle_InvalidDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	_, err := uc.SubmitHustle(context.Background(), &models.HustleDraft{
		Title:       "",
		Description: "",
		PayRate:     "free",
		ContactInfo: "",
		IsRemote:    false,
	})

	validationErr, ok := apierr.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields, "title")
	assert.Contains(t, validationErr.Fields, "pay_rate")
	assert.Contains(t, validationErr.Fields, "contact_info")
	assert.Contains(t, validationErr.Fields, "location")
}

func TestSubmitHustle_WithIDUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	mockGW.EXPECT().UpdateHustle(gomock.Any(), "hustle-1", gomock.Any()).Return(&models.UserHustle{ID: "hustle-1"}, nil)
	expectFullView(mockGW)

	_, err := uc.SubmitHustle(context.Background(), &models.HustleDraft{
		ID:          "hustle-1",
		Title:       "Content writer",
		Description: "Updated description",
		PayRate:     "600",
		IsRemote:    true,
		ContactInfo: "9876543210",
	})

	require.NoError(t, err)
}

func TestDeleteHustle_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewHustlesUC(mocks.NewMockHustlesGW(ctrl), &models.Config{})

	_, err := uc.DeleteHustle(context.Background(), "hustle-1", false)
	assert.Error(t, err)
}

func TestApply_RequiresCoverMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewHustlesUC(mocks.NewMockHustlesGW(ctrl), &models.Config{})

	_, err := uc.Apply(context.Background(), "hustle-1", &models.ApplicationDraft{})

	validationErr, ok := apierr.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields, "cover_message")
}

func TestApply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockHustlesGW(ctrl)
	uc := NewHustlesUC(mockGW, &models.Config{})

	mockGW.EXPECT().Apply(gomock.Any(), "hustle-1", gomock.Any()).Return(nil)
	expectFullView(mockGW)

	_, err := uc.Apply(context.Background(), "hustle-1", &models.ApplicationDraft{
		CoverMessage: "I have two years of writing experience",
	})

	require.NoError(t, err)
}
