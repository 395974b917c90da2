package usecase

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/derive"
	"github.com/earnnest/earnnest-web/internal/pkg/fetch"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

// GetDashboard loads every dashboard section concurrently. A failed
// section leaves its zero value and an entry in view.Errors; the rest
// of the view still renders.
func (uc *DashboardUC) GetDashboard(ctx context.Context) (*models.DashboardView, error) {
	view := &models.DashboardView{
		RecentTransactions: []models.Transaction{},
		Goals:              []models.GoalView{},
		Budgets:            []models.BudgetView{},
	}

	var (
		summary *models.TransactionSummary
		goals   []models.FinancialGoal
		budgets []models.Budget
	)

	errs := fetch.Join(ctx, map[string]fetch.Task{
		"profile": func(ctx context.Context) error {
			profile, err := uc.gw.GetProfile(ctx)
			if err != nil {
				return err
			}
			view.Profile = profile
			return nil
		},
		"summary": func(ctx context.Context) error {
			result, err := uc.gw.GetTransactionSummary(ctx)
			if err != nil {
				return err
			}
			summary = result
			return nil
		},
		"recent_transactions": func(ctx context.Context) error {
			transactions, err := uc.gw.GetTransactions(ctx, recentTransactionCount)
			if err != nil {
				return err
			}
			view.RecentTransactions = transactions
			return nil
		},
		"goals": func(ctx context.Context) error {
			result, err := uc.gw.GetGoals(ctx)
			if err != nil {
				return err
			}
			goals = result
			return nil
		},
		"budgets": func(ctx context.Context) error {
			result, err := uc.gw.GetBudgets(ctx)
			if err != nil {
				return err
			}
			budgets = result
			return nil
		},
		"insights": func(ctx context.Context) error {
			insights, err := uc.gw.GetInsights(ctx)
			if err != nil {
				return err
			}
			view.Insights = insights
			return nil
		},
	})

	if summary != nil {
		view.Summary = buildMonthSummary(summary)
	}
	view.Goals = buildGoalViews(goals)
	view.Budgets = buildBudgetViews(budgets)
	view.Errors = fetch.Messages(errs)

	return view, nil
}

// GetTransactionsView loads the transaction list screen. A limit of 0
// fetches the upstream default page.
func (uc *DashboardUC) GetTransactionsView(ctx context.Context, limit int) (*models.TransactionsView, error) {
	view := &models.TransactionsView{
		Transactions: []models.Transaction{},
	}

	var summary *models.TransactionSummary

	errs := fetch.Join(ctx, map[string]fetch.Task{
		"transactions": func(ctx context.Context) error {
			transactions, err := uc.gw.GetTransactions(ctx, limit)
			if err != nil {
				return err
			}
			view.Transactions = transactions
			return nil
		},
		"summary": func(ctx context.Context) error {
			result, err := uc.gw.GetTransactionSummary(ctx)
			if err != nil {
				return err
			}
			summary = result
			return nil
		},
	})

	if summary != nil {
		view.Summary = buildMonthSummary(summary)
	}
	view.Errors = fetch.Messages(errs)

	return view, nil
}

func buildMonthSummary(summary *models.TransactionSummary) *models.MonthSummaryView {
	return &models.MonthSummaryView{
		TransactionSummary: *summary,
		SavingsRate:        derive.SavingsRate(summary.Income, summary.Expense),
		IncomeDisplay:      derive.FormatCurrency(summary.Income),
		ExpenseDisplay:     derive.FormatCurrency(summary.Expense),
		NetDisplay:         derive.FormatCurrency(summary.NetSavings),
	}
}
