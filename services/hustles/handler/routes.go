package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	"github.com/earnnest/earnnest-web/services/hustles/handler/http"
)

// Handler coordinates the HTTP handlers for the marketplace service
type Handler struct {
	hustlesHandler *http.HustlesHandler
}

// NewHandler creates and initializes the marketplace handlers
func NewHandler(hustlesHandler *http.HustlesHandler) *Handler {
	return &Handler{
		hustlesHandler: hustlesHandler,
	}
}

// RegisterRoutes wires the marketplace routes onto the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/views/hustles", h.hustlesHandler.GetHustles)

	authed := e.Group("", middleware.RequireAuth())
	authed.POST("/forms/hustles", h.hustlesHandler.SubmitHustle)
	authed.DELETE("/hustles/:id", h.hustlesHandler.DeleteHustle)
	authed.POST("/hustles/:id/apply", h.hustlesHandler.Apply)
}
