package viral

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/earnnest/earnnest-web/services/viral ViralGW

// ViralGW represents the upstream API operations for gamification
type ViralGW interface {
	GetChallenges(ctx context.Context) (*models.ChallengeBundle, error)
	JoinChallenge(ctx context.Context, challengeID string) (*models.UserChallenge, error)

	GetReferralStats(ctx context.Context) (*models.ReferralBundle, error)
	SendReferral(ctx context.Context, refereeEmail string) error

	GetCoinBalance(ctx context.Context) (*models.CoinBundle, error)
	GetAchievements(ctx context.Context) ([]models.Achievement, error)
	GetStreaks(ctx context.Context) ([]models.UserStreak, error)
}
