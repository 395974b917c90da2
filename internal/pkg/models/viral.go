package models

import "time"

// Challenge statuses for a user's participation record.
const (
	ChallengeActive    = "active"
	ChallengeCompleted = "completed"
	ChallengeFailed    = "failed"
)

// Challenge is a time-boxed goal template users can join
type Challenge struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ChallengeType string    `json:"challenge_type"`
	TargetValue   float64   `json:"target_value"`
	TargetUnit    string    `json:"target_unit"`
	DurationDays  int       `json:"duration_days"`
	RewardCoins   int       `json:"reward_coins"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IsActive      bool      `json:"is_active"`
	Difficulty    string    `json:"difficulty"`
	Joined        bool      `json:"joined"`
}

// UserChallenge is a per-user participation record
type UserChallenge struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ChallengeID   string     `json:"challenge_id"`
	Progress      float64    `json:"progress"`
	Status        string     `json:"status"`
	RewardClaimed bool       `json:"reward_claimed"`
	JoinedAt      time.Time  `json:"joined_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Referral records one referred user
type Referral struct {
	ID           string     `json:"id"`
	ReferrerID   string     `json:"referrer_id"`
	RefereeEmail string     `json:"referee_email"`
	ReferralCode string     `json:"referral_code"`
	Status       string     `json:"status"`
	CoinsEarned  int        `json:"coins_earned"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// ReferralStats is the aggregate block from /api/viral/referral-stats
type ReferralStats struct {
	TotalReferrals     int `json:"total_referrals"`
	CompletedReferrals int `json:"completed_referrals"`
	PendingReferrals   int `json:"pending_referrals"`
	TotalCoinsEarned   int `json:"total_coins_earned"`
}

// CoinTransaction is one EarnCoins ledger entry
type CoinTransaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	Source      string    `json:"source"`
	Description string    `json:"description"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Achievement is an earned or earnable badge
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	RewardCoins int        `json:"reward_coins"`
	Progress    float64    `json:"progress"`
	IsClaimed   bool       `json:"is_claimed"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

// UserStreak tracks one streak type for the user
type UserStreak struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	StreakType       string     `json:"streak_type"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	TotalActivities  int        `json:"total_activities"`
}

// ReferralDraft mirrors the invite form
type ReferralDraft struct {
	RefereeEmail string `json:"referee_email"`
}

// ChallengeBundle is the joined challenges payload from /api/viral/challenges
type ChallengeBundle struct {
	Active      []Challenge     `json:"active_challenges"`
	Joined      []UserChallenge `json:"user_challenges"`
	TotalJoined int             `json:"total_joined"`
}

// ReferralBundle is the payload from /api/viral/referral-stats
type ReferralBundle struct {
	ReferralCode    string         `json:"referral_code"`
	Stats           *ReferralStats `json:"stats"`
	RecentReferrals []Referral     `json:"recent_referrals"`
}

// CoinBundle is the payload from /api/viral/earncoins/balance
type CoinBundle struct {
	Balance            int               `json:"balance"`
	TotalEarned        int               `json:"total_earned"`
	RecentTransactions []CoinTransaction `json:"recent_transactions"`
}
