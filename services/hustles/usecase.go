package hustles

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/earnnest/earnnest-web/services/hustles HustlesUC

// HustlesUC represents the side-hustle marketplace usecase interface
type HustlesUC interface {
	GetHustlesView(ctx context.Context) (*models.HustlesView, error)

	// SubmitHustle coerces the posting form (free-text contact and
	// location included) and creates or updates the hustle.
	SubmitHustle(ctx context.Context, draft *models.HustleDraft) (*models.HustlesView, error)
	DeleteHustle(ctx context.Context, hustleID string, confirm bool) (*models.HustlesView, error)
	Apply(ctx context.Context, hustleID string, draft *models.ApplicationDraft) (*models.HustlesView, error)
}
