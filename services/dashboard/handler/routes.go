package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	"github.com/earnnest/earnnest-web/services/dashboard/handler/http"
)

// Handler coordinates the HTTP handlers for the dashboard service
type Handler struct {
	dashboardHandler *http.DashboardHandler
}

// NewHandler creates and initializes the dashboard handlers
func NewHandler(dashboardHandler *http.DashboardHandler) *Handler {
	return &Handler{
		dashboardHandler: dashboardHandler,
	}
}

// RegisterRoutes wires the dashboard routes onto the Echo instance.
// Views render for any session; mutations require authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	views := e.Group("/views")
	views.GET("/dashboard", h.dashboardHandler.GetDashboard)
	views.GET("/transactions", h.dashboardHandler.GetTransactions)

	forms := e.Group("/forms", middleware.RequireAuth())
	forms.POST("/transactions", h.dashboardHandler.SubmitTransaction)
	forms.POST("/goals", h.dashboardHandler.SubmitGoal)
	forms.POST("/budgets", h.dashboardHandler.SubmitBudget)
	forms.PUT("/profile", h.dashboardHandler.UpdateProfile)

	authed := e.Group("", middleware.RequireAuth())
	authed.DELETE("/goals/:id", h.dashboardHandler.DeleteGoal)
	authed.DELETE("/budgets/:id", h.dashboardHandler.DeleteBudget)
}
