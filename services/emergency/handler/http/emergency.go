package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/utils"
	"github.com/earnnest/earnnest-web/services/emergency"
)

// EmergencyHandler handles HTTP requests for emergency-service lookup
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(emergencyUC emergency.EmergencyUC) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUC: emergencyUC,
	}
}

// FindNearby handles the nearby-services lookup form
func (h *EmergencyHandler) FindNearby(c echo.Context) error {
	var req models.NearbyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid nearby lookup payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.emergencyUC.FindNearby(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, emergency.ErrLocationNotFound) {
			return utils.UnprocessableResponse(c, err.Error())
		}
		logger.Error("Nearby lookup failed",
			logger.String("query", req.Query),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Lookup is temporarily unavailable, please try again")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby services found", view)
}

// ResolveLocation handles a standalone geocoding request
func (h *EmergencyHandler) ResolveLocation(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return utils.BadRequestResponse(c, "Query is required")
	}

	location, err := h.emergencyUC.ResolveLocation(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, emergency.ErrLocationNotFound) {
			return utils.UnprocessableResponse(c, err.Error())
		}
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Geocoding is temporarily unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", location)
}
