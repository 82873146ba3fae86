package domain

import (
	"context"
	"time"
)

// Session is the signed-in identity context. It replaces a client-held copy of the
// organizer record: handlers receive it from the auth middleware and must not cache it
// beyond the request.
type Session struct {
	ID          string     `json:"session_id"`
	OrganizerID string     `json:"organizer_id"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

// NewSession returns a session for the organizer valid for ttl from issuedAt.
func NewSession(organizerID string, issuedAt time.Time, ttl time.Duration) *Session {
	return &Session{
		OrganizerID: organizerID,
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(ttl),
	}
}

// Active reports whether the session is neither revoked nor expired at now.
func (s *Session) Active(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}

// TokenIssuer issues signed tokens bound to a session.
type TokenIssuer interface {
	Issue(organizerID, sessionID string, expiresAt time.Time) (string, error)
}

// TokenVerifier verifies a token and returns the organizer and session it was issued for.
type TokenVerifier interface {
	Verify(token string) (organizerID, sessionID string, err error)
}
