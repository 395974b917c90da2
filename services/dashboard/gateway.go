package dashboard

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/earnnest/earnnest-web/services/dashboard DashboardGW

// DashboardGW represents the upstream API operations the dashboard views need
type DashboardGW interface {
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.User, error)

	GetTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	GetTransactionSummary(ctx context.Context) (*models.TransactionSummary, error)
	CreateTransaction(ctx context.Context, create *models.TransactionCreate) (*models.Transaction, error)

	GetGoals(ctx context.Context) ([]models.FinancialGoal, error)
	CreateGoal(ctx context.Context, create *models.GoalCreate) (*models.FinancialGoal, error)
	UpdateGoal(ctx context.Context, goalID string, update *models.GoalUpdate) (*models.FinancialGoal, error)
	DeleteGoal(ctx context.Context, goalID string) error

	GetBudgets(ctx context.Context) ([]models.Budget, error)
	CreateBudget(ctx context.Context, create *models.BudgetCreate) (*models.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, update *models.BudgetUpdate) (*models.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	GetInsights(ctx context.Context) (*models.Insights, error)
}
