package models

import "time"

// Hustle statuses as served by the EarnNest API.
const (
	HustleActive    = "active"
	HustleClosed    = "closed"
	HustleCompleted = "completed"
)

// ContactInfo is the tagged form of a hustle's contact details. Free-text
// input is classified exactly once at the data-entry boundary; views only
// ever see the parsed shape.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// LocationInfo is the structured form of a hustle's location
type LocationInfo struct {
	Area  string `json:"area"`
	City  string `json:"city"`
	State string `json:"state"`
}

// UserHustle represents a gig posting owned by a user
type UserHustle struct {
	ID                  string        `json:"id"`
	CreatedBy           string        `json:"created_by"`
	CreatorName         string        `json:"creator_name,omitempty"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Category            string        `json:"category"`
	PayRate             float64       `json:"pay_rate"`
	PayType             string        `json:"pay_type"`
	TimeCommitment      string        `json:"time_commitment"`
	RequiredSkills      []string      `json:"required_skills"`
	DifficultyLevel     string        `json:"difficulty_level"`
	Location            *LocationInfo `json:"location,omitempty"`
	IsRemote            bool          `json:"is_remote"`
	ContactInfo         ContactInfo   `json:"contact_info"`
	ApplicationDeadline *time.Time    `json:"application_deadline,omitempty"`
	MaxApplicants       *int          `json:"max_applicants,omitempty"`
	Status              string        `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	Applicants          []string      `json:"applicants"`
	IsAdminPosted       bool          `json:"is_admin_posted"`
}

// HustleCreate is the upstream payload for posting a hustle
type HustleCreate struct {
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Category            string        `json:"category"`
	PayRate             float64       `json:"pay_rate"`
	PayType             string        `json:"pay_type"`
	TimeCommitment      string        `json:"time_commitment"`
	RequiredSkills      []string      `json:"required_skills"`
	DifficultyLevel     string        `json:"difficulty_level"`
	Location            *LocationInfo `json:"location,omitempty"`
	IsRemote            bool          `json:"is_remote"`
	ContactInfo         ContactInfo   `json:"contact_info"`
	ApplicationDeadline *time.Time    `json:"application_deadline,omitempty"`
	MaxApplicants       *int          `json:"max_applicants,omitempty"`
}

// HustleUpdate is the upstream payload for editing a hustle; nil fields are omitted
type HustleUpdate struct {
	Title               *string       `json:"title,omitempty"`
	Description         *string       `json:"description,omitempty"`
	Category            *string       `json:"category,omitempty"`
	PayRate             *float64      `json:"pay_rate,omitempty"`
	PayType             *string       `json:"pay_type,omitempty"`
	TimeCommitment      *string       `json:"time_commitment,omitempty"`
	RequiredSkills      []string      `json:"required_skills,omitempty"`
	DifficultyLevel     *string       `json:"difficulty_level,omitempty"`
	Location            *LocationInfo `json:"location,omitempty"`
	IsRemote            *bool         `json:"is_remote,omitempty"`
	ContactInfo         *ContactInfo  `json:"contact_info,omitempty"`
	ApplicationDeadline *time.Time    `json:"application_deadline,omitempty"`
	MaxApplicants       *int          `json:"max_applicants,omitempty"`
	Status              *string       `json:"status,omitempty"`
}

// HustleDraft mirrors the posting form as entered. Skills are comma-separated
// text, contact and location are free text until coerced at submit.
type HustleDraft struct {
	ID                  string `json:"id,omitempty"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	PayRate             string `json:"pay_rate"`
	PayType             string `json:"pay_type"`
	TimeCommitment      string `json:"time_commitment"`
	RequiredSkills      string `json:"required_skills"`
	DifficultyLevel     string `json:"difficulty_level"`
	Location            string `json:"location"`
	IsRemote            bool   `json:"is_remote"`
	ContactInfo         string `json:"contact_info"`
	ApplicationDeadline string `json:"application_deadline"`
	MaxApplicants       string `json:"max_applicants"`
}

// HustleApplication is a user's submission against a hustle
type HustleApplication struct {
	ID             string    `json:"id"`
	HustleID       string    `json:"hustle_id"`
	ApplicantID    string    `json:"applicant_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	CoverMessage   string    `json:"cover_message"`
	AppliedAt      time.Time `json:"applied_at"`
	Status         string    `json:"status"`
}

// ApplicationDraft mirrors the application form
type ApplicationDraft struct {
	CoverMessage string `json:"cover_message"`
}

// HustleOpportunity is a recommended (admin/AI curated) gig
type HustleOpportunity struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	EstimatedPay    float64  `json:"estimated_pay"`
	TimeCommitment  string   `json:"time_commitment"`
	RequiredSkills  []string `json:"required_skills"`
	DifficultyLevel string   `json:"difficulty_level"`
	Platform        string   `json:"platform"`
	ApplicationLink string   `json:"application_link,omitempty"`
	MatchScore      float64  `json:"match_score"`
}
