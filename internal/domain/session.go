package domain

import "time"

// Session is a snapshot of the authenticated user taken at login or signup.
// It is not a live reference to the User record.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NewSession snapshots the user into a session valid for ttl.
func NewSession(id string, user *User, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
