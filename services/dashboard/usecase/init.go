package usecase

import (
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/services/dashboard"
)

// recentTransactionCount is how many transactions the dashboard shows
const recentTransactionCount = 5

type DashboardUC struct {
	gw  dashboard.DashboardGW
	cfg *models.Config
}

// NewDashboardUC creates a new dashboard usecase instance
func NewDashboardUC(
	gw dashboard.DashboardGW,
	cfg *models.Config,
) *DashboardUC {
	return &DashboardUC{
		gw:  gw,
		cfg: cfg,
	}
}
