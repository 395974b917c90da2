package models

import "time"

// FinancialGoal represents a savings goal as served by the EarnNest API.
// Current amount is user-edited, not reconciled against transactions.
type FinancialGoal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Description   string     `json:"description,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	IsCompleted   bool       `json:"is_completed"`
}

// GoalCreate is the upstream payload for creating a financial goal
type GoalCreate struct {
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Description   *string    `json:"description,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// GoalUpdate is the upstream payload for editing a goal; nil fields are omitted
type GoalUpdate struct {
	Name          *string    `json:"name,omitempty"`
	TargetAmount  *float64   `json:"target_amount,omitempty"`
	CurrentAmount *float64   `json:"current_amount,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	IsCompleted   *bool      `json:"is_completed,omitempty"`
}

// GoalDraft mirrors the goal form fields as entered
type GoalDraft struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Description   string `json:"description"`
	TargetDate    string `json:"target_date"`
}

// GoalView is a goal decorated with display-only derivations
type GoalView struct {
	FinancialGoal
	ProgressPercent  float64 `json:"progress_percent"`
	RemainingDays    int     `json:"remaining_days"`
	TargetDisplay    string  `json:"target_display"`
	CurrentDisplay   string  `json:"current_display"`
	RemainingDisplay string  `json:"remaining_display"`
}
