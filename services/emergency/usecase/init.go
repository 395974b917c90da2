package usecase

import (
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/emergency"
)

type EmergencyUC struct {
	gw   emergency.GeoGW
	repo emergency.GeoRepo
	cfg  *models.Config
}

// NewEmergencyUC creates a new emergency lookup usecase instance
func NewEmergencyUC(
	gw emergency.GeoGW,
	repo emergency.GeoRepo,
	cfg *models.Config,
) *EmergencyUC {
	return &EmergencyUC{
		gw:   gw,
		repo: repo,
		cfg:  cfg,
	}
}
