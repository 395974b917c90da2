package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/fetch"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// GetReferralsView loads the referral program screen
func (uc *ViralUC) GetReferralsView(ctx context.Context) (*models.ReferralsView, error) {
	bundle, err := uc.gw.GetReferralStats(ctx)
	if err != nil {
		return nil, err
	}

	view := &models.ReferralsView{
		ReferralCode:    bundle.ReferralCode,
		Stats:           bundle.Stats,
		RecentReferrals: bundle.RecentReferrals,
	}
	if view.RecentReferrals == nil {
		view.RecentReferrals = []models.Referral{}
	}
	if bundle.ReferralCode != "" {
		view.ReferralLink = fmt.Sprintf("%s/register?ref=%s",
			strings.TrimRight(uc.cfg.App.ShareBaseURL, "/"), bundle.ReferralCode)
	}
	return view, nil
}

// SendReferral validates the invite form, sends it upstream and refetches
// the referral view
func (uc *ViralUC) SendReferral(ctx context.Context, draft *models.ReferralDraft) (*models.ReferralsView, error) {
	email := strings.TrimSpace(draft.RefereeEmail)
	if email == "" || !strings.Contains(email, "@") {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"referee_email": "a valid email is required",
		}}
	}

	if err := uc.gw.SendReferral(ctx, email); err != nil {
		return nil, err
	}

	return uc.GetReferralsView(ctx)
}

// GetRewardsView loads the EarnCoins screen: balance, achievements and
// streaks fetched concurrently with per-section failure isolation.
func (uc *ViralUC) GetRewardsView(ctx context.Context) (*models.RewardsView, error) {
	view := &models.RewardsView{
		RecentTransactions: []models.CoinTransaction{},
		Achievements:       []models.Achievement{},
		Streaks:            []models.UserStreak{},
	}

	errs := fetch.Join(ctx, map[string]fetch.Task{
		"balance": func(ctx context.Context) error {
			bundle, err := uc.gw.GetCoinBalance(ctx)
			if err != nil {
				return err
			}
			view.Balance = bundle.Balance
			view.TotalEarned = bundle.TotalEarned
			view.BalanceDisplay = fmt.Sprintf("%d EarnCoins", bundle.Balance)
			if bundle.RecentTransactions != nil {
				view.RecentTransactions = bundle.RecentTransactions
			}
			return nil
		},
		"achievements": func(ctx context.Context) error {
			achievements, err := uc.gw.GetAchievements(ctx)
			if err != nil {
				return err
			}
			if achievements != nil {
				view.Achievements = achievements
			}
			return nil
		},
		"streaks": func(ctx context.Context) error {
			streaks, err := uc.gw.GetStreaks(ctx)
			if err != nil {
				return err
			}
			if streaks != nil {
				view.Streaks = streaks
			}
			return nil
		},
	})

	view.Errors = fetch.Messages(errs)
	return view, nil
}
