package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/utils"
	"github.com/earnnest/earnnest-web/services/viral"
)

// ViralHandler handles HTTP requests for the gamification screens
type ViralHandler struct {
	viralUC viral.ViralUC
}

// NewViralHandler creates a new gamification handler
func NewViralHandler(viralUC viral.ViralUC) *ViralHandler {
	return &ViralHandler{
		viralUC: viralUC,
	}
}

// GetChallenges serves the challenges view
func (h *ViralHandler) GetChallenges(c echo.Context) error {
	view, err := h.viralUC.GetChallengesView(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build challenges view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load challenges")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Challenges loaded", view)
}

// JoinChallenge handles the join-challenge action
func (h *ViralHandler) JoinChallenge(c echo.Context) error {
	var payload struct {
		ChallengeID string `json:"challenge_id"`
	}
	if err := c.Bind(&payload); err != nil {
		logger.Warn("Invalid join-challenge payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.viralUC.JoinChallenge(c.Request().Context(), payload.ChallengeID)
	if err != nil {
		return utils.FormFailure(c, err, payload)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Challenge joined", view)
}

// GetReferrals serves the referral program view
func (h *ViralHandler) GetReferrals(c echo.Context) error {
	view, err := h.viralUC.GetReferralsView(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build referrals view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load referrals")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Referrals loaded", view)
}

// SendReferral handles the invite form
func (h *ViralHandler) SendReferral(c echo.Context) error {
	var draft models.ReferralDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("Invalid referral payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.viralUC.SendReferral(c.Request().Context(), &draft)
	if err != nil {
		return utils.FormFailure(c, err, draft)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invitation sent", view)
}

// GetRewards serves the EarnCoins view
func (h *ViralHandler) GetRewards(c echo.Context) error {
	view, err := h.viralUC.GetRewardsView(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build rewards view", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load rewards")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rewards loaded", view)
}
