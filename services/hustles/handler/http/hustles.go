package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/utils"
	"github.com/earnnest/earnnest-web/services/hustles"
)

// HustlesHandler handles HTTP requests for the marketplace screens
type HustlesHandler struct {
	hustlesUC hustles.HustlesUC
}

// NewHustlesHandler creates a new marketplace handler
func NewHustlesHandler(hustlesUC hustles.HustlesUC) *HustlesHandler {
	return &HustlesHandler{
		hustlesUC: hustlesUC,
	}
}

// GetHustles serves the marketplace view
func (h *HustlesHandler) GetHustles(c echo.Context) error {
	view, err := h.hustlesUC.GetHustlesView(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build hustles view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load hustles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hustles loaded", view)
}

// SubmitHustle handles the post/edit hustle form
func (h *HustlesHandler) SubmitHustle(c echo.Context) error {
	var draft models.HustleDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid hustle form payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.hustlesUC.SubmitHustle(c.Request().Context(), &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hustle saved", view)
}

// DeleteHustle handles hustle deletion; requires confirm=true
func (h *HustlesHandler) DeleteHustle(c echo.Context) error {
	hustleID := c.Param("id")
	if hustleID == "" {
		return utils.BadRequestResponse(c, "Invalid hustle ID")
	}
	confirm := c.QueryParam("confirm") == "true"

	view, err := h.hustlesUC.DeleteHustle(c.Request().Context(), hustleID, confirm)
	if err != nil {
		return utils.FormFailure(c, err, nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hustle deleted", view)
}

// Apply handles the application form for a hustle
func (h *HustlesHandler) Apply(c echo.Context) error {
	hustleID := c.Param("id")
	if hustleID == "" {
		return utils.BadRequestResponse(c, "Invalid hustle ID")
	}

	var draft models.ApplicationDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid application payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.hustlesUC.Apply(c.Request().Context(), hustleID, &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Application submitted", view)
}
