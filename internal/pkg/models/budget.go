package models

import "time"

// Budget represents a monthly category budget
type Budget struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Category        string    `json:"category"`
	AllocatedAmount float64   `json:"allocated_amount"`
	SpentAmount     float64   `json:"spent_amount"`
	Month           string    `json:"month"`
	CreatedAt       time.Time `json:"created_at"`
}

// BudgetCreate is the upstream payload for creating a budget
type BudgetCreate struct {
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
	Month           string  `json:"month"`
}

// BudgetUpdate is the upstream payload for editing a budget
type BudgetUpdate struct {
	Category        *string  `json:"category,omitempty"`
	AllocatedAmount *float64 `json:"allocated_amount,omitempty"`
	Month           *string  `json:"month,omitempty"`
}

// BudgetDraft mirrors the budget form fields as entered
type BudgetDraft struct {
	ID              string `json:"id,omitempty"`
	Category        string `json:"category"`
	AllocatedAmount string `json:"allocated_amount"`
	Month           string `json:"month"`
}

// BudgetView is a budget decorated with display-only derivations
type BudgetView struct {
	Budget
	UtilizationPercent float64 `json:"utilization_percent"`
	AllocatedDisplay   string  `json:"allocated_display"`
	SpentDisplay       string  `json:"spent_display"`
}
