package usecase

import (
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/hustles"
)

type HustlesUC struct {
	gw  hustles.HustlesGW
	cfg *models.Config
}

// NewHustlesUC creates a new marketplace usecase instance
func NewHustlesUC(
	gw hustles.HustlesGW,
	cfg *models.Config,
) *HustlesUC {
	return &HustlesUC{
		gw:  gw,
		cfg: cfg,
	}
}
