package domain

import (
	"context"
	"time"
)

// TypicalEventSizes are the accepted values for Organizer.TypicalEventSize.
var TypicalEventSizes = []string{"small", "medium", "large", "xlarge", "varies"}

// Organizer is the event-planning customer account. Email is the sign-in key.
// swagger:model Organizer
type Organizer struct {
	ID               string    `json:"organizer_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	CompanyName      *string   `json:"company_name"`
	Phone            *string   `json:"phone"`
	City             *string   `json:"city"`
	TypicalEventSize *string   `json:"typical_event_size"`
	EventsPerYear    *int      `json:"events_per_year"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewOrganizer returns an Organizer with the required fields set. ID is set by the repository on create.
func NewOrganizer(fullName, email string, createdAt time.Time) *Organizer {
	return &Organizer{
		FullName:  fullName,
		Email:     email,
		CreatedAt: createdAt,
	}
}

// OrganizerRepository defines the interface for organizer storage.
type OrganizerRepository interface {
	Create(ctx context.Context, o *Organizer) error
	GetByEmail(ctx context.Context, email string) (*Organizer, error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
}

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	Token     string
	Session   *Session
	Organizer *Organizer
}

// OrganizerService defines registration and the session lifecycle for organizers.
type OrganizerService interface {
	Register(ctx context.Context, o *Organizer) error
	// SignIn looks up exactly one organizer by email. There is no credential check.
	SignIn(ctx context.Context, email string) (*SignInResult, error)
	// Authenticate resolves a token to an active session.
	Authenticate(ctx context.Context, token string) (*Session, error)
	// Refresh reloads the organizer bound to the session.
	Refresh(ctx context.Context, session *Session) (*Organizer, error)
	SignOut(ctx context.Context, session *Session) error
}
