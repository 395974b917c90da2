package usecase

import (
	"context"
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/derive"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/pkg/parse"
)

// SubmitTransaction coerces the draft, posts it upstream, and refetches
// the transaction view so the list reflects the new entry. A validation
// or upstream failure returns the error with the draft untouched.
func (uc *DashboardUC) SubmitTransaction(ctx context.Context, draft *models.TransactionDraft) (*models.TransactionsView, error) {
	create, err := coerceTransaction(draft)
	if err != nil {
		return nil, err
	}

	if _, err := uc.gw.CreateTransaction(ctx, create); err != nil {
		return nil, err
	}

	return uc.GetTransactionsView(ctx, 0)
}

// SubmitGoal creates or updates a goal depending on draft ID presence,
// then refetches the goal list.
func (uc *DashboardUC) SubmitGoal(ctx context.Context, draft *models.GoalDraft) ([]models.GoalView, error) {
	fields := map[string]string{}
	if draft.Name == "" {
		fields["name"] = "name is required"
	}

	targetAmount, err := parse.Amount(draft.TargetAmount)
	if err != nil {
		fields["target_amount"] = err.Error()
	}
	currentAmount, err := parse.OptionalAmount(draft.CurrentAmount)
	if err != nil {
		fields["current_amount"] = err.Error()
	}
	targetDate, err := parse.OptionalDate(draft.TargetDate)
	if err != nil {
		fields["target_date"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, &apierr.ValidationError{Fields: fields}
	}

	if draft.ID == "" {
		create := &models.GoalCreate{
			Name:          draft.Name,
			Category:      draft.Category,
			TargetAmount:  targetAmount,
			CurrentAmount: currentAmount,
			Description:   parse.OptionalString(draft.Description),
			TargetDate:    targetDate,
		}
		if _, err := uc.gw.CreateGoal(ctx, create); err != nil {
			return nil, err
		}
	} else {
		update := &models.GoalUpdate{
			Name:          &draft.Name,
			TargetAmount:  &targetAmount,
			CurrentAmount: &currentAmount,
			Description:   parse.OptionalString(draft.Description),
			TargetDate:    targetDate,
		}
		if _, err := uc.gw.UpdateGoal(ctx, draft.ID, update); err != nil {
			return nil, err
		}
	}

	return uc.refetchGoals(ctx)
}

// DeleteGoal removes a goal. The confirm flag must be set explicitly;
// a bare delete request is rejected before any upstream call.
func (uc *DashboardUC) DeleteGoal(ctx context.Context, goalID string, confirm bool) ([]models.GoalView, error) {
	if !confirm {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"confirm": "deletion requires confirmation",
		}}
	}

	if err := uc.gw.DeleteGoal(ctx, goalID); err != nil {
		return nil, err
	}

	return uc.refetchGoals(ctx)
}

// SubmitBudget creates or updates a budget, then refetches the budget list
func (uc *DashboardUC) SubmitBudget(ctx context.Context, draft *models.BudgetDraft) ([]models.BudgetView, error) {
	fields := map[string]string{}
	if draft.Category == "" {
		fields["category"] = "category is required"
	}
	allocated, err := parse.Amount(draft.AllocatedAmount)
	if err != nil {
		fields["allocated_amount"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, &apierr.ValidationError{Fields: fields}
	}

	month := draft.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	if draft.ID == "" {
		create := &models.BudgetCreate{
			Category:        draft.Category,
			AllocatedAmount: allocated,
			Month:           month,
		}
		if _, err := uc.gw.CreateBudget(ctx, create); err != nil {
			return nil, err
		}
	} else {
		update := &models.BudgetUpdate{
			Category:        &draft.Category,
			AllocatedAmount: &allocated,
			Month:           &month,
		}
		if _, err := uc.gw.UpdateBudget(ctx, draft.ID, update); err != nil {
			return nil, err
		}
	}

	return uc.refetchBudgets(ctx)
}

// DeleteBudget removes a budget after explicit confirmation
func (uc *DashboardUC) DeleteBudget(ctx context.Context, budgetID string, confirm bool) ([]models.BudgetView, error) {
	if !confirm {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"confirm": "deletion requires confirmation",
		}}
	}

	if err := uc.gw.DeleteBudget(ctx, budgetID); err != nil {
		return nil, err
	}

	return uc.refetchBudgets(ctx)
}

// UpdateProfile sends profile edits upstream and returns the fresh profile
func (uc *DashboardUC) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.User, error) {
	return uc.gw.UpdateProfile(ctx, update)
}

func (uc *DashboardUC) refetchGoals(ctx context.Context) ([]models.GoalView, error) {
	goals, err := uc.gw.GetGoals(ctx)
	if err != nil {
		return nil, err
	}
	return buildGoalViews(goals), nil
}

func (uc *DashboardUC) refetchBudgets(ctx context.Context) ([]models.BudgetView, error) {
	budgets, err := uc.gw.GetBudgets(ctx)
	if err != nil {
		return nil, err
	}
	return buildBudgetViews(budgets), nil
}

func coerceTransaction(draft *models.TransactionDraft) (*models.TransactionCreate, error) {
	fields := map[string]string{}

	if draft.Type != models.TransactionIncome && draft.Type != models.TransactionExpense {
		fields["type"] = "type must be income or expense"
	}
	if draft.Category == "" {
		fields["category"] = "category is required"
	}
	amount, err := parse.Amount(draft.Amount)
	if err != nil {
		fields["amount"] = err.Error()
	} else if amount <= 0 {
		fields["amount"] = "amount must be greater than zero"
	}
	if len(fields) > 0 {
		return nil, &apierr.ValidationError{Fields: fields}
	}

	return &models.TransactionCreate{
		Type:            draft.Type,
		Amount:          amount,
		Category:        draft.Category,
		Description:     draft.Description,
		Source:          parse.OptionalString(draft.Source),
		IsHustleRelated: draft.IsHustleRelated,
	}, nil
}

func buildGoalViews(goals []models.FinancialGoal) []models.GoalView {
	now := time.Now()
	views := make([]models.GoalView, 0, len(goals))
	for _, goal := range goals {
		view := models.GoalView{
			FinancialGoal:   goal,
			ProgressPercent: derive.ProgressPercent(goal.CurrentAmount, goal.TargetAmount),
			TargetDisplay:   derive.FormatCurrency(goal.TargetAmount),
			CurrentDisplay:  derive.FormatCurrency(goal.CurrentAmount),
		}
		remaining := goal.TargetAmount - goal.CurrentAmount
		if remaining < 0 {
			remaining = 0
		}
		view.RemainingDisplay = derive.FormatCurrency(remaining)
		if goal.TargetDate != nil {
			view.RemainingDays = derive.RemainingDays(*goal.TargetDate, now)
		}
		views = append(views, view)
	}
	return views
}

func buildBudgetViews(budgets []models.Budget) []models.BudgetView {
	views := make([]models.BudgetView, 0, len(budgets))
	for _, budget := range budgets {
		views = append(views, models.BudgetView{
			Budget:             budget,
			UtilizationPercent: derive.ProgressPercent(budget.SpentAmount, budget.AllocatedAmount),
			AllocatedDisplay:   derive.FormatCurrency(budget.AllocatedAmount),
			SpentDisplay:       derive.FormatCurrency(budget.SpentAmount),
		})
	}
	return views
}
