package dashboard

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/earnnest/earnnest-web/services/dashboard DashboardUC

// DashboardUC represents the dashboard usecase interface
type DashboardUC interface {
	GetDashboard(ctx context.Context) (*models.DashboardView, error)
	GetTransactionsView(ctx context.Context, limit int) (*models.TransactionsView, error)

	// form submissions: coerce the draft, post upstream, refetch the owning list
	SubmitTransaction(ctx context.Context, draft *models.TransactionDraft) (*models.TransactionsView, error)
	SubmitGoal(ctx context.Context, draft *models.GoalDraft) ([]models.GoalView, error)
	DeleteGoal(ctx context.Context, goalID string, confirm bool) ([]models.GoalView, error)
	SubmitBudget(ctx context.Context, draft *models.BudgetDraft) ([]models.BudgetView, error)
	DeleteBudget(ctx context.Context, budgetID string, confirm bool) ([]models.BudgetView, error)

	UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.User, error)
}
