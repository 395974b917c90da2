package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/dashboard/mocks"
)

func TestSubmitTransaction_CreatesAndRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, create *models.TransactionCreate) (*models.Transaction, error) {
			assert.Equal(t, models.TransactionExpense, create.Type)
			assert.Equal(t, 250.0, create.Amount)
			assert.Nil(t, create.Source)
			return &models.Transaction{ID: "txn-new"}, nil
		})
	mockGW.EXPECT().GetTransactions(gomock.Any(), 0).Return([]models.Transaction{{ID: "txn-new"}}, nil)
	mockGW.EXPECT().GetTransactionSummary(gomock.Any()).Return(&models.TransactionSummary{}, nil)

	view, err := uc.SubmitTransaction(context.Background(), &models.TransactionDraft{
		Type:     models.TransactionExpense,
		Amount:   "250",
		Category: "food",
	})

	require.NoError(t, err)
	assert.Len(t, view.Transactions, 1)
}

func TestSubmitTransaction_InvalidDraftNeverReachesUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	_, err := uc.SubmitTransaction(context.Background(), &models.TransactionDraft{
		Type:     "transfer",
		Amount:   "abc",
		Category: "",
	})

	validationErr, ok := apierr.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields, "type")
	assert.Contains(t, validationErr.Fields, "amount")
	assert.Contains(t, validationErr.Fields, "category")
}

func TestSubmitGoal_BlankCurrentAmountIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, create *models.GoalCreate) (*models.FinancialGoal, error) {
			assert.Zero(t, create.CurrentAmount)
			assert.Nil(t, create.TargetDate)
			return &models.FinancialGoal{ID: "goal-new"}, nil
		})
	mockGW.EXPECT().GetGoals(gomock.Any()).Return([]models.FinancialGoal{{ID: "goal-new", TargetAmount: 50000}}, nil)

	goals, err := uc.SubmitGoal(context.Background(), &models.GoalDraft{
		Name:          "Emergency fund",
		Category:      "savings",
		TargetAmount:  "50000",
		CurrentAmount: "",
	})

	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "₹50K", goals[0].TargetDisplay)
}

func TestSubmitGoal_WithIDUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().UpdateGoal(gomock.Any(), "goal-1", gomock.Any()).Return(&models.FinancialGoal{ID: "goal-1"}, nil)
	mockGW.EXPECT().GetGoals(gomock.Any()).Return([]models.FinancialGoal{{ID: "goal-1"}}, nil)

	_, err := uc.SubmitGoal(context.Background(), &models.GoalDraft{
		ID:           "goal-1",
		Name:         "Laptop",
		TargetAmount: "80000",
	})

	require.NoError(t, err)
}

func TestDeleteGoal_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	_, err := uc.DeleteGoal(context.Background(), "goal-1", false)

	validationErr, ok := apierr.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields, "confirm")
}

func TestDeleteGoal_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().DeleteGoal(gomock.Any(), "goal-1").Return(nil)
	mockGW.EXPECT().GetGoals(gomock.Any()).Return([]models.FinancialGoal{}, nil)

	goals, err := uc.DeleteGoal(context.Background(), "goal-1", true)

	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestSubmitBudget_DefaultsToCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, create *models.BudgetCreate) (*models.Budget, error) {
			assert.Regexp(t, `^\d{4}-\d{2}$`, create.Month)
			return &models.Budget{ID: "budget-new"}, nil
		})
	mockGW.EXPECT().GetBudgets(gomock.Any()).Return([]models.Budget{{ID: "budget-new"}}, nil)

	_, err := uc.SubmitBudget(context.Background(), &models.BudgetDraft{
		Category:        "food",
		AllocatedAmount: "4000",
	})

	require.NoError(t, err)
}

func TestDeleteBudget_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	_, err := uc.DeleteBudget(context.Background(), "budget-1", false)
	assert.Error(t, err)
}
