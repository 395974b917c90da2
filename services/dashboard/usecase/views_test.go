package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/dashboard/mocks"
)

func TestGetDashboard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().GetProfile(gomock.Any()).Return(&models.User{ID: "user-1", FullName: "Priya"}, nil)
	mockGW.EXPECT().GetTransactionSummary(gomock.Any()).Return(&models.TransactionSummary{
		Income:     10000,
		Expense:    6000,
		NetSavings: 4000,
	}, nil)
	mockGW.EXPECT().GetTransactions(gomock.Any(), recentTransactionCount).Return([]models.Transaction{
		{ID: "txn-1", Amount: 500},
	}, nil)
	mockGW.EXPECT().GetGoals(gomock.Any()).Return([]models.FinancialGoal{
		{ID: "goal-1", TargetAmount: 10000, CurrentAmount: 2500},
	}, nil)
	mockGW.EXPECT().GetBudgets(gomock.Any()).Return([]models.Budget{
		{ID: "budget-1", AllocatedAmount: 5000, SpentAmount: 6000},
	}, nil)
	mockGW.EXPECT().GetInsights(gomock.Any()).Return(&models.Insights{SavingsRate: 40}, nil)

	view, err := uc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Empty(t, view.Errors)
	assert.Equal(t, "Priya", view.Profile.FullName)
	assert.InDelta(t, 40, view.Summary.SavingsRate, 0.001)
	assert.Equal(t, "₹10K", view.Summary.IncomeDisplay)
	assert.Len(t, view.RecentTransactions, 1)

	require.Len(t, view.Goals, 1)
	assert.InDelta(t, 25, view.Goals[0].ProgressPercent, 0.001)

	require.Len(t, view.Budgets, 1)
	// utilization clamps at 100 even when overspent
	assert.InDelta(t, 100, view.Budgets[0].UtilizationPercent, 0.001)
}

func TestGetDashboard_FailedSectionIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().GetProfile(gomock.Any()).Return(&models.User{ID: "user-1"}, nil)
	mockGW.EXPECT().GetTransactionSummary(gomock.Any()).Return(nil, errors.New("summary unavailable"))
	mockGW.EXPECT().GetTransactions(gomock.Any(), recentTransactionCount).Return([]models.Transaction{}, nil)
	mockGW.EXPECT().GetGoals(gomock.Any()).Return([]models.FinancialGoal{}, nil)
	mockGW.EXPECT().GetBudgets(gomock.Any()).Return([]models.Budget{}, nil)
	mockGW.EXPECT().GetInsights(gomock.Any()).Return(nil, errors.New("insights unavailable"))

	view, err := uc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, view.Profile)
	assert.Nil(t, view.Summary)
	assert.Nil(t, view.Insights)
	assert.Contains(t, view.Errors, "summary")
	assert.Contains(t, view.Errors, "insights")
	assert.NotContains(t, view.Errors, "profile")
}

func TestGetTransactionsView_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockDashboardGW(ctrl)
	uc := NewDashboardUC(mockGW, &models.Config{})

	mockGW.EXPECT().GetTransactions(gomock.Any(), 0).Return([]models.Transaction{
		{ID: "txn-1"}, {ID: "txn-2"},
	}, nil)
	mockGW.EXPECT().GetTransactionSummary(gomock.Any()).Return(&models.TransactionSummary{
		Income: 0, Expense: 2000,
	}, nil)

	view, err := uc.GetTransactionsView(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, view.Transactions, 2)
	// zero income never divides
	assert.Zero(t, view.Summary.SavingsRate)
}
