package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/services/emergency/handler/http"
)

// Handler coordinates the HTTP handlers for the emergency service
type Handler struct {
	emergencyHandler *http.EmergencyHandler
}

// NewHandler creates and initializes the emergency handlers
func NewHandler(emergencyHandler *http.EmergencyHandler) *Handler {
	return &Handler{
		emergencyHandler: emergencyHandler,
	}
}

// RegisterRoutes wires the emergency lookup routes onto the Echo instance.
// Lookup stays public: emergencies don't wait for a login.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/views/nearby", h.emergencyHandler.FindNearby)
	e.GET("/views/geocode", h.emergencyHandler.ResolveLocation)
}
