package models

import "time"

// Transaction types as served by the EarnNest API.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction represents a single income or expense entry
type Transaction struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Source          string    `json:"source,omitempty"`
	Date            time.Time `json:"date"`
	IsHustleRelated bool      `json:"is_hustle_related"`
}

// TransactionCreate is the upstream payload for creating a transaction
type TransactionCreate struct {
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Source          *string `json:"source,omitempty"`
	IsHustleRelated bool    `json:"is_hustle_related"`
}

// TransactionSummary is the current-month aggregate from /api/transactions/summary
type TransactionSummary struct {
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	IncomeCount  int     `json:"income_count"`
	ExpenseCount int     `json:"expense_count"`
	NetSavings   float64 `json:"net_savings"`
}

// TransactionDraft mirrors the transaction form fields as entered. Coercion
// to TransactionCreate happens at submit, not while the user is typing.
type TransactionDraft struct {
	Type            string `json:"type"`
	Amount          string `json:"amount"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	Source          string `json:"source"`
	IsHustleRelated bool   `json:"is_hustle_related"`
}
