package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/earnnest/earnnest-web/internal/pkg/http"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// EarnNestGateway is the HTTP client for the EarnNest API's finance
// endpoints: profile, transactions, goals, budgets and insights. The
// session bearer token is forwarded from the request context per call.
type EarnNestGateway struct {
	client *httpclient.BearerClient
}

// NewEarnNestGateway creates a new EarnNest API gateway
func NewEarnNestGateway(baseURL string, timeout time.Duration) *EarnNestGateway {
	return &EarnNestGateway{
		client: httpclient.NewBearerClient("earnnest-api", baseURL, timeout),
	}
}

// GetProfile fetches the session user's profile
func (g *EarnNestGateway) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.client.GetJSON(ctx, "/api/user/profile", &user); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile sends profile edits upstream and returns the updated profile
func (g *EarnNestGateway) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := g.client.PutJSON(ctx, "/api/user/profile", update, &user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// GetTransactions fetches the user's transactions, newest first
func (g *EarnNestGateway) GetTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	endpoint := "/api/transactions"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}

	var transactions []models.Transaction
	if err := g.client.GetJSON(ctx, endpoint, &transactions); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactions, nil
}

// GetTransactionSummary fetches the current-month income/expense aggregate
func (g *EarnNestGateway) GetTransactionSummary(ctx context.Context) (*models.TransactionSummary, error) {
	var summary models.TransactionSummary
	if err := g.client.GetJSON(ctx, "/api/transactions/summary", &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction summary: %w", err)
	}
	return &summary, nil
}

// CreateTransaction posts a new transaction
func (g *EarnNestGateway) CreateTransaction(ctx context.Context, create *models.TransactionCreate) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := g.client.PostJSON(ctx, "/api/transactions", create, &transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &transaction, nil
}

// GetGoals fetches the user's financial goals
func (g *EarnNestGateway) GetGoals(ctx context.Context) ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	if err := g.client.GetJSON(ctx, "/api/financial-goals", &goals); err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}
	return goals, nil
}

// CreateGoal posts a new financial goal
func (g *EarnNestGateway) CreateGoal(ctx context.Context, create *models.GoalCreate) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := g.client.PostJSON(ctx, "/api/financial-goals", create, &goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

// UpdateGoal sends goal edits upstream
func (g *EarnNestGateway) UpdateGoal(ctx context.Context, goalID string, update *models.GoalUpdate) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	endpoint := fmt.Sprintf("/api/financial-goals/%s", goalID)
	if err := g.client.PutJSON(ctx, endpoint, update, &goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return &goal, nil
}

// DeleteGoal removes a goal
func (g *EarnNestGateway) DeleteGoal(ctx context.Context, goalID string) error {
	endpoint := fmt.Sprintf("/api/financial-goals/%s", goalID)
	if err := g.client.DeleteJSON(ctx, endpoint, nil); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// GetBudgets fetches the user's budgets
func (g *EarnNestGateway) GetBudgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := g.client.GetJSON(ctx, "/api/budgets", &budgets); err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}
	return budgets, nil
}

// CreateBudget posts a new budget
func (g *EarnNestGateway) CreateBudget(ctx context.Context, create *models.BudgetCreate) (*models.Budget, error) {
	var budget models.Budget
	if err := g.client.PostJSON(ctx, "/api/budgets", create, &budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return &budget, nil
}

// UpdateBudget sends budget edits upstream
func (g *EarnNestGateway) UpdateBudget(ctx context.Context, budgetID string, update *models.BudgetUpdate) (*models.Budget, error) {
	var budget models.Budget
	endpoint := fmt.Sprintf("/api/budgets/%s", budgetID)
	if err := g.client.PutJSON(ctx, endpoint, update, &budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &budget, nil
}

// DeleteBudget removes a budget
func (g *EarnNestGateway) DeleteBudget(ctx context.Context, budgetID string) error {
	endpoint := fmt.Sprintf("/api/budgets/%s", budgetID)
	if err := g.client.DeleteJSON(ctx, endpoint, nil); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// GetInsights fetches the analytics block for the dashboard
func (g *EarnNestGateway) GetInsights(ctx context.Context) (*models.Insights, error) {
	var insights models.Insights
	if err := g.client.GetJSON(ctx, "/api/analytics/insights", &insights); err != nil {
		return nil, fmt.Errorf("failed to fetch insights: %w", err)
	}
	return &insights, nil
}
