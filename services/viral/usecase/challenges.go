package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/derive"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// GetChallengesView loads active challenges joined with the user's
// participation, decorated with progress and days-left derivations.
func (uc *ViralUC) GetChallengesView(ctx context.Context) (*models.ChallengesView, error) {
	bundle, err := uc.gw.GetChallenges(ctx)
	if err != nil {
		return nil, err
	}

	return buildChallengesView(bundle, time.Now()), nil
}

// JoinChallenge enrolls the user and refetches the challenges view
func (uc *ViralUC) JoinChallenge(ctx context.Context, challengeID string) (*models.ChallengesView, error) {
	if challengeID == "" {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"challenge_id": "challenge is required",
		}}
	}

	if _, err := uc.gw.JoinChallenge(ctx, challengeID); err != nil {
		return nil, err
	}

	return uc.GetChallengesView(ctx)
}

func buildChallengesView(bundle *models.ChallengeBundle, now time.Time) *models.ChallengesView {
	progressByChallenge := make(map[string]float64, len(bundle.Joined))
	for _, joined := range bundle.Joined {
		progressByChallenge[joined.ChallengeID] = joined.Progress
	}

	active := make([]models.ChallengeView, 0, len(bundle.Active))
	for _, challenge := range bundle.Active {
		view := models.ChallengeView{
			Challenge:     challenge,
			DaysLeft:      derive.RemainingDays(challenge.EndDate, now),
			RewardDisplay: fmt.Sprintf("%d EarnCoins", challenge.RewardCoins),
		}
		if progress, ok := progressByChallenge[challenge.ID]; ok {
			view.ProgressPercent = derive.ProgressPercent(progress, challenge.TargetValue)
		}
		active = append(active, view)
	}

	return &models.ChallengesView{
		Active:      active,
		Joined:      bundle.Joined,
		TotalJoined: bundle.TotalJoined,
	}
}
