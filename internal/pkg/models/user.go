package models

import "time"

// User represents the session user's profile as served by the EarnNest API.
// The client holds a non-authoritative copy; all edits go back upstream.
type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	Role                 string    `json:"role"`
	StudentLevel         string    `json:"student_level,omitempty"`
	Skills               []string  `json:"skills"`
	AvailabilityHours    int       `json:"availability_hours"`
	Location             string    `json:"location"`
	Bio                  string    `json:"bio,omitempty"`
	Avatar               string    `json:"avatar"`
	CreatedAt            time.Time `json:"created_at"`
	TotalEarnings        float64   `json:"total_earnings"`
	NetSavings           float64   `json:"net_savings"`
	CurrentStreak        int       `json:"current_streak"`
	ReferralCode         string    `json:"referral_code"`
	EarnCoinsBalance     int       `json:"earn_coins_balance"`
	TotalEarnCoinsEarned int       `json:"total_earn_coins_earned"`
	TotalReferrals       int       `json:"total_referrals"`
	DailyLoginStreak     int       `json:"daily_login_streak"`
	LongestLoginStreak   int       `json:"longest_login_streak"`
	Level                int       `json:"level"`
	ExperiencePoints     int       `json:"experience_points"`
	PreferredLanguage    string    `json:"preferred_language,omitempty"`
}

// ProfileUpdate is the payload for profile edits. Optional fields are
// pointers so absent values are omitted rather than sent as empty strings.
type ProfileUpdate struct {
	FullName          *string  `json:"full_name,omitempty"`
	Role              *string  `json:"role,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	AvailabilityHours *int     `json:"availability_hours,omitempty"`
	Location          *string  `json:"location,omitempty"`
	Bio               *string  `json:"bio,omitempty"`
	Avatar            *string  `json:"avatar,omitempty"`
}
