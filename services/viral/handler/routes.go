package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	"github.com/earnnest/earnnest-web/services/viral/handler/http"
)

// Handler coordinates the HTTP handlers for the gamification service
type Handler struct {
	viralHandler *http.ViralHandler
}

// NewHandler creates and initializes the gamification handlers
func NewHandler(viralHandler *http.ViralHandler) *Handler {
	return &Handler{
		viralHandler: viralHandler,
	}
}

// RegisterRoutes wires the gamification routes onto the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/views/challenges", h.viralHandler.GetChallenges)
	e.GET("/views/referrals", h.viralHandler.GetReferrals)
	e.GET("/views/rewards", h.viralHandler.GetRewards)

	authed := e.Group("", middleware.RequireAuth())
	authed.POST("/forms/join-challenge", h.viralHandler.JoinChallenge)
	authed.POST("/forms/referrals", h.viralHandler.SendReferral)
}
