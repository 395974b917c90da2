package usecase

import (
	"context"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/fetch"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/earnnest/earnnest-web/internal/pkg/parse"
)

// GetHustlesView loads all five marketplace sections concurrently. Failed
// sections render empty with their error recorded, never blanking the rest.
func (uc *HustlesUC) GetHustlesView(ctx context.Context) (*models.HustlesView, error) {
	view := &models.HustlesView{
		Recommendations: []models.HustleOpportunity{},
		UserPosted:      []models.UserHustle{},
		AdminPosted:     []models.UserHustle{},
		MyApplications:  []models.HustleApplication{},
		MyPosted:        []models.UserHustle{},
	}

	errs := fetch.Join(ctx, map[string]fetch.Task{
		"recommendations": func(ctx context.Context) error {
			recommendations, err := uc.gw.GetRecommendations(ctx)
			if err != nil {
				return err
			}
			view.Recommendations = recommendations
			return nil
		},
		"user_posted": func(ctx context.Context) error {
			hustleList, err := uc.gw.GetUserPosted(ctx)
			if err != nil {
				return err
			}
			view.UserPosted = hustleList
			return nil
		},
		"admin_posted": func(ctx context.Context) error {
			hustleList, err := uc.gw.GetAdminPosted(ctx)
			if err != nil {
				return err
			}
			view.AdminPosted = hustleList
			return nil
		},
		"my_applications": func(ctx context.Context) error {
			applications, err := uc.gw.GetMyApplications(ctx)
			if err != nil {
				return err
			}
			view.MyApplications = applications
			return nil
		},
		"my_posted": func(ctx context.Context) error {
			hustleList, err := uc.gw.GetMyPosted(ctx)
			if err != nil {
				return err
			}
			view.MyPosted = hustleList
			return nil
		},
	})

	view.Errors = fetch.Messages(errs)
	return view, nil
}

// SubmitHustle coerces the posting form and creates or updates the hustle,
// then refetches the marketplace view. Free-text contact and location are
// parsed into their structured forms here, exactly once.
func (uc *HustlesUC) SubmitHustle(ctx context.Context, draft *models.HustleDraft) (*models.HustlesView, error) {
	fields := map[string]string{}
	if draft.Title == "" {
		fields["title"] = "title is required"
	}
	if draft.Description == "" {
		fields["description"] = "description is required"
	}
	payRate, err := parse.Amount(draft.PayRate)
	if err != nil {
		fields["pay_rate"] = err.Error()
	}
	deadline, err := parse.OptionalDate(draft.ApplicationDeadline)
	if err != nil {
		fields["application_deadline"] = err.Error()
	}
	maxApplicants, err := parse.OptionalInt(draft.MaxApplicants)
	if err != nil {
		fields["max_applicants"] = err.Error()
	}

	contact := parse.Contact(draft.ContactInfo)
	if contact == (models.ContactInfo{}) {
		fields["contact_info"] = "contact info is required"
	}

	location := parse.Location(draft.Location)
	if location == nil && !draft.IsRemote {
		fields["location"] = "location is required for on-site hustles"
	}

	if len(fields) > 0 {
		return nil, &apierr.ValidationError{Fields: fields}
	}

	if draft.ID == "" {
		create := &models.HustleCreate{
			Title:               draft.Title,
			Description:         draft.Description,
			Category:            draft.Category,
			PayRate:             payRate,
			PayType:             draft.PayType,
			TimeCommitment:      draft.TimeCommitment,
			RequiredSkills:      parse.CSV(draft.RequiredSkills),
			DifficultyLevel:     draft.DifficultyLevel,
			Location:            location,
			IsRemote:            draft.IsRemote,
			ContactInfo:         contact,
			ApplicationDeadline: deadline,
			MaxApplicants:       maxApplicants,
		}
		if _, err := uc.gw.CreateHustle(ctx, create); err != nil {
			return nil, err
		}
	} else {
		update := &models.HustleUpdate{
			Title:               &draft.Title,
			Description:         &draft.Description,
			Category:            &draft.Category,
			PayRate:             &payRate,
			PayType:             &draft.PayType,
			TimeCommitment:      &draft.TimeCommitment,
			RequiredSkills:      parse.CSV(draft.RequiredSkills),
			DifficultyLevel:     &draft.DifficultyLevel,
			Location:            location,
			IsRemote:            &draft.IsRemote,
			ContactInfo:         &contact,
			ApplicationDeadline: deadline,
			MaxApplicants:       maxApplicants,
		}
		if _, err := uc.gw.UpdateHustle(ctx, draft.ID, update); err != nil {
			return nil, err
		}
	}

	return uc.GetHustlesView(ctx)
}

// DeleteHustle removes a posted hustle after explicit confirmation
func (uc *HustlesUC) DeleteHustle(ctx context.Context, hustleID string, confirm bool) (*models.HustlesView, error) {
	if !confirm {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"confirm": "deletion requires confirmation",
		}}
	}

	if err := uc.gw.DeleteHustle(ctx, hustleID); err != nil {
		return nil, err
	}

	return uc.GetHustlesView(ctx)
}

// Apply submits an application against a hustle and refetches the view
func (uc *HustlesUC) Apply(ctx context.Context, hustleID string, draft *models.ApplicationDraft) (*models.HustlesView, error) {
	if draft.CoverMessage == "" {
		return nil, &apierr.ValidationError{Fields: map[string]string{
			"cover_message": "cover message is required",
		}}
	}

	if err := uc.gw.Apply(ctx, hustleID, draft); err != nil {
		return nil, err
	}

	return uc.GetHustlesView(ctx)
}
