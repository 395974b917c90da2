package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/earnnest/earnnest-web/internal/pkg/http"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// ViralGateway is the HTTP client for the EarnNest API's gamification
// endpoints. Most of them wrap their payload in a success envelope.
type ViralGateway struct {
	client *httpclient.BearerClient
}

// NewViralGateway creates a new gamification gateway
func NewViralGateway(baseURL string, timeout time.Duration) *ViralGateway {
	return &ViralGateway{
		client: httpclient.NewBearerClient("earnnest-api", baseURL, timeout),
	}
}

// GetChallenges fetches active challenges with the user's participation
func (g *ViralGateway) GetChallenges(ctx context.Context) (*models.ChallengeBundle, error) {
	var bundle models.ChallengeBundle
	if err := g.client.GetJSON(ctx, "/api/viral/challenges", &bundle); err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}
	return &bundle, nil
}

// JoinChallenge enrolls the user into a challenge
func (g *ViralGateway) JoinChallenge(ctx context.Context, challengeID string) (*models.UserChallenge, error) {
	payload := map[string]string{"challenge_id": challengeID}

	var response struct {
		UserChallenge models.UserChallenge `json:"user_challenge"`
	}
	if err := g.client.PostJSON(ctx, "/api/viral/join-challenge", payload, &response); err != nil {
		return nil, fmt.Errorf("failed to join challenge: %w", err)
	}
	return &response.UserChallenge, nil
}

// GetReferralStats fetches the user's referral code, aggregate stats and
// recent referrals
func (g *ViralGateway) GetReferralStats(ctx context.Context) (*models.ReferralBundle, error) {
	var bundle models.ReferralBundle
	if err := g.client.GetJSON(ctx, "/api/viral/referral-stats", &bundle); err != nil {
		return nil, fmt.Errorf("failed to fetch referral stats: %w", err)
	}
	return &bundle, nil
}

// SendReferral sends a referral invitation
func (g *ViralGateway) SendReferral(ctx context.Context, refereeEmail string) error {
	payload := map[string]string{"referee_email": refereeEmail}
	if err := g.client.PostJSON(ctx, "/api/viral/send-referral", payload, nil); err != nil {
		return fmt.Errorf("failed to send referral: %w", err)
	}
	return nil
}

// GetCoinBalance fetches the EarnCoins balance and recent ledger entries
func (g *ViralGateway) GetCoinBalance(ctx context.Context) (*models.CoinBundle, error) {
	var bundle models.CoinBundle
	if err := g.client.GetJSON(ctx, "/api/viral/earncoins/balance", &bundle); err != nil {
		return nil, fmt.Errorf("failed to fetch coin balance: %w", err)
	}
	return &bundle, nil
}

// GetAchievements fetches all achievements with the user's progress
func (g *ViralGateway) GetAchievements(ctx context.Context) ([]models.Achievement, error) {
	var response struct {
		AllAchievements []models.Achievement `json:"all_achievements"`
	}
	if err := g.client.GetJSON(ctx, "/api/viral/achievements", &response); err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}
	return response.AllAchievements, nil
}

// GetStreaks fetches the user's activity streaks
func (g *ViralGateway) GetStreaks(ctx context.Context) ([]models.UserStreak, error) {
	var response struct {
		Streaks []models.UserStreak `json:"streaks"`
	}
	if err := g.client.GetJSON(ctx, "/api/viral/streaks", &response); err != nil {
		return nil, fmt.Errorf("failed to fetch streaks: %w", err)
	}
	return response.Streaks, nil
}
