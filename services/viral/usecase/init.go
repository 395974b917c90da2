package usecase

import (
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/viral"
)

type ViralUC struct {
	gw  viral.ViralGW
	cfg *models.Config
}

// NewViralUC creates a new gamification usecase instance
func NewViralUC(
	gw viral.ViralGW,
	cfg *models.Config,
) *ViralUC {
	return &ViralUC{
		gw:  gw,
		cfg: cfg,
	}
}
