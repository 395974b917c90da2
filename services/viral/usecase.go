package viral

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/earnnest/earnnest-web/services/viral ViralUC

// ViralUC represents the gamification usecase interface: challenges,
// referrals and EarnCoins rewards.
type ViralUC interface {
	GetChallengesView(ctx context.Context) (*models.ChallengesView, error)
	JoinChallenge(ctx context.Context, challengeID string) (*models.ChallengesView, error)

	GetReferralsView(ctx context.Context) (*models.ReferralsView, error)
	SendReferral(ctx context.Context, draft *models.ReferralDraft) (*models.ReferralsView, error)

	GetRewardsView(ctx context.Context) (*models.RewardsView, error)
}
