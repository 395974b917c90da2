package models

// Session is the per-request identity extracted from the bearer token.
// It is read-only and passed explicitly into each view; an unauthenticated
// session still renders public views with reduced functionality.
type Session struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email,omitempty"`
	Token         string `json:"-"`
	Authenticated bool   `json:"authenticated"`
}

// AnonymousSession returns the session used when no bearer token is present.
func AnonymousSession() Session {
	return Session{Authenticated: false}
}
