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
	"github.com/earnnest/earnnest-web/services/viral/mocks"
)

func referralConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{ShareBaseURL: "https://earnnest.app/"},
	}
}

func TestGetReferralsView_BuildsShareLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockViralGW(ctrl)
	uc := NewViralUC(mockGW, referralConfig())

	mockGW.EXPECT().GetReferralStats(gomock.Any()).Return(&models.ReferralBundle{
		ReferralCode: "EARN1234",
		Stats:        &models.ReferralStats{TotalReferrals: 3, CompletedReferrals: 2},
	}, nil)

	view, err := uc.GetReferralsView(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "EARN1234", view.ReferralCode)
	assert.Equal(t, "https://earnnest.app/register?ref=EARN1234", view.ReferralLink)
	assert.NotNil(t, view.RecentReferrals)
	assert.Empty(t, view.RecentReferrals)
}

func TestGetReferralsView_NoCodeNoLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockViralGW(ctrl)
	uc := NewViralUC(mockGW, referralConfig())

	mockGW.EXPECT().GetReferralStats(gomock.Any()).Return(&models.ReferralBundle{}, nil)

	view, err := uc.GetReferralsView(context.Background())

	require.NoError(t, err)
	assert.Empty(t, view.ReferralLink)
}

func TestSendReferral_SendsAndRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockViralGW(ctrl)
	uc := NewViralUC(mockGW, referralConfig())

	mockGW.EXPECT().SendReferral(gomock.Any(), "friend@example.com").Return(nil)
	mockGW.EXPECT().GetReferralStats(gomock.Any()).Return(&models.ReferralBundle{
		ReferralCode: "EARN1234",
		Stats:        &models.ReferralStats{TotalReferrals: 4, PendingReferrals: 1},
		RecentReferrals: []models.Referral{
			{ID: "ref-1", RefereeEmail: "friend@example.com", Status: "pending"},
		},
	}, nil)

	view, err := uc.SendReferral(context.Background(), &models.ReferralDraft{
		RefereeEmail: "  friend@example.com  ",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, view.Stats.TotalReferrals)
	assert.Len(t, view.RecentReferrals, 1)
}

func TestSendReferral_InvalidEmailNeverReachesUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockViralGW(ctrl)
	uc := NewViralUC(mockGW, referralConfig())

	for _, email := range []string{"", "   ", "not-an-email"} {
		view, err := uc.SendReferral(context.Background(), &models.ReferralDraft{RefereeEmail: email})

		require.Error(t, err)
		assert.Nil(t, view)

		var vErr *apierr.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "referee_email")
	}
}

func TestGetRewardsView_FailedSectionIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockViralGW(ctrl)
	uc := NewViralUC(mockGW, referralConfig())

	mockGW.EXPECT().GetCoinBalance(gomock.Any()).Return(&models.CoinBundle{
		Balance:     420,
		TotalEarned: 900,
		RecentTransactions: []models.CoinTransaction{
			{ID: "tx-1", Type: "earned", Amount: 50, Source: "challenge"},
		},
	}, nil)
	mockGW.EXPECT().GetAchievements(gomock.Any()).Return(nil, errors.New("achievements down"))
	mockGW.EXPECT().GetStreaks(gomock.Any()).Return([]models.UserStreak{
		{ID: "st-1", StreakType: "daily_login", CurrentStreak: 7},
	}, nil)

	view, err := uc.GetRewardsView(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 420, view.Balance)
	assert.Equal(t, "420 EarnCoins", view.BalanceDisplay)
	assert.Len(t, view.RecentTransactions, 1)
	assert.Len(t, view.Streaks, 1)
	assert.Empty(t, view.Achievements)
	assert.Contains(t, view.Errors, "achievements")
	assert.NotContains(t, view.Errors, "balance")
	assert.NotContains(t, view.Errors, "streaks")
}
