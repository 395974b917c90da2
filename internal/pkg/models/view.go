package models

// View models returned to the browser. Each section is filled by its own
// upstream read; a failed read leaves the section zero-valued and records
// the failure under Errors keyed by section name, so partial data still
// renders instead of blanking the whole view.

// Insights is the analytics block from /api/analytics/insights
type Insights struct {
	SavingsRate     float64  `json:"savings_rate"`
	TopCategory     string   `json:"top_category,omitempty"`
	MonthlyTrend    string   `json:"monthly_trend,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// DashboardView is the main dashboard screen
type DashboardView struct {
	Profile            *User              `json:"profile,omitempty"`
	Summary            *MonthSummaryView  `json:"summary,omitempty"`
	RecentTransactions []Transaction      `json:"recent_transactions"`
	Goals              []GoalView         `json:"goals"`
	Budgets            []BudgetView       `json:"budgets"`
	Insights           *Insights          `json:"insights,omitempty"`
	Errors             map[string]string  `json:"errors,omitempty"`
}

// MonthSummaryView is the current-month summary with display strings
type MonthSummaryView struct {
	TransactionSummary
	SavingsRate    float64 `json:"savings_rate"`
	IncomeDisplay  string  `json:"income_display"`
	ExpenseDisplay string  `json:"expense_display"`
	NetDisplay     string  `json:"net_display"`
}

// TransactionsView is the transaction list screen
type TransactionsView struct {
	Transactions []Transaction     `json:"transactions"`
	Summary      *MonthSummaryView `json:"summary,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// HustlesView is the side-hustle marketplace screen
type HustlesView struct {
	Recommendations []HustleOpportunity `json:"recommendations"`
	UserPosted      []UserHustle        `json:"user_posted"`
	AdminPosted     []UserHustle        `json:"admin_posted"`
	MyApplications  []HustleApplication `json:"my_applications"`
	MyPosted        []UserHustle        `json:"my_posted"`
	Errors          map[string]string   `json:"errors,omitempty"`
}

// ChallengeView is a challenge decorated with display-only derivations
type ChallengeView struct {
	Challenge
	ProgressPercent float64 `json:"progress_percent"`
	DaysLeft        int     `json:"days_left"`
	RewardDisplay   string  `json:"reward_display"`
}

// ChallengesView is the challenges screen
type ChallengesView struct {
	Active      []ChallengeView   `json:"active_challenges"`
	Joined      []UserChallenge   `json:"user_challenges"`
	TotalJoined int               `json:"total_joined"`
	Errors      map[string]string `json:"errors,omitempty"`
}

// ReferralsView is the referral program screen
type ReferralsView struct {
	ReferralCode    string            `json:"referral_code"`
	ReferralLink    string            `json:"referral_link"`
	Stats           *ReferralStats    `json:"stats,omitempty"`
	RecentReferrals []Referral        `json:"recent_referrals"`
	Errors          map[string]string `json:"errors,omitempty"`
}

// RewardsView is the EarnCoins / achievements / streaks screen
type RewardsView struct {
	Balance            int               `json:"balance"`
	TotalEarned        int               `json:"total_earned"`
	BalanceDisplay     string            `json:"balance_display"`
	RecentTransactions []CoinTransaction `json:"recent_transactions"`
	Achievements       []Achievement     `json:"achievements"`
	Streaks            []UserStreak      `json:"streaks"`
	Errors             map[string]string `json:"errors,omitempty"`
}
