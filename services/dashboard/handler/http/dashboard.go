package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/pkg/parse"
	"github.com/earnnest/earnnest-web/internal/utils"
	"github.com/earnnest/earnnest-web/services/dashboard"
)

// DashboardHandler handles HTTP requests for the dashboard screens
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// GetDashboard serves the main dashboard view
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	view, err := h.dashboardUC.GetDashboard(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build dashboard view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard loaded", view)
}

// GetTransactions serves the transaction list view. An optional limit
// query param is passed through to the upstream API.
func (h *DashboardHandler) GetTransactions(c echo.Context) error {
	limit := 0
	if parsed, err := parse.OptionalInt(c.QueryParam("limit")); err != nil {
		return utils.BadRequestResponse(c, "limit must be a whole number")
	} else if parsed != nil && *parsed > 0 {
		limit = *parsed
	}

	view, err := h.dashboardUC.GetTransactionsView(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to build transactions view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions loaded", view)
}

// SubmitTransaction handles the add-transaction form
func (h *DashboardHandler) SubmitTransaction(c echo.Context) error {
	var draft models.TransactionDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid transaction form payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.dashboardUC.SubmitTransaction(c.Request().Context(), &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded", view)
}

// SubmitGoal handles the create/edit goal form
func (h *DashboardHandler) SubmitGoal(c echo.Context) error {
	var draft models.GoalDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid goal form payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	goals, err := h.dashboardUC.SubmitGoal(c.Request().Context(), &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Goal saved", goals)
}

// DeleteGoal handles goal deletion; requires confirm=true
func (h *DashboardHandler) DeleteGoal(c echo.Context) error {
	goalID := c.Param("id")
	if goalID == "" {
		return utils.BadRequestResponse(c, "Invalid goal ID")
	}
	confirm := c.QueryParam("confirm") == "true"

	goals, err := h.dashboardUC.DeleteGoal(c.Request().Context(), goalID, confirm)
	if err != nil {
		return utils.FormFailure(c, err, nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Goal deleted", goals)
}

// SubmitBudget handles the create/edit budget form
func (h *DashboardHandler) SubmitBudget(c echo.Context) error {
	var draft models.BudgetDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid budget form payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	budgets, err := h.dashboardUC.SubmitBudget(c.Request().Context(), &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget saved", budgets)
}

// DeleteBudget handles budget deletion; requires confirm=true
func (h *DashboardHandler) DeleteBudget(c echo.Context) error {
	budgetID := c.Param("id")
	if budgetID == "" {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}
	confirm := c.QueryParam("confirm") == "true"

	budgets, err := h.dashboardUC.DeleteBudget(c.Request().Context(), budgetID, confirm)
	if err != nil {
		return utils.FormFailure(c, err, nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget deleted", budgets)
}

// UpdateProfile handles profile edits
func (h *DashboardHandler) UpdateProfile(c echo.Context) error {
	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		logger.Warn("Invalid profile payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.dashboardUC.UpdateProfile(c.Request().Context(), &update)
	if err != nil {
		return utils.FormFailure(c, err, update)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}
