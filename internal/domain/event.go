package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the matching lifecycle state of an event. It is written by the
// external matching workflow; this service only ever writes StatusPending.
type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusMatched   EventStatus = "matched"
	StatusConfirmed EventStatus = "confirmed"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusMatched, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// EventTypes are the accepted values for Event.EventType.
var EventTypes = []string{"conference", "wedding", "corporate", "party", "seminar", "other"}

// Event is a planning request created by an organizer.
// swagger:model Event
type Event struct {
	ID                  string          `json:"event_id"`
	OrganizerID         string          `json:"organizer_id"`
	Name                string          `json:"event_name"`
	EventType           *string         `json:"event_type"`
	AttendeeCount       int             `json:"attendee_count"`
	City                string          `json:"event_city"`
	Address             *string         `json:"event_address"`
	Budget              decimal.Decimal `json:"budget" swaggertype:"string"`
	NeedsVenue          bool            `json:"needs_venue"`
	NeedsCatering       bool            `json:"needs_catering"`
	NeedsTech           bool            `json:"needs_tech"`
	VenueApproved       bool            `json:"venue_approved"`
	CateringApproved    bool            `json:"catering_approved"`
	TechApproved        bool            `json:"tech_approved"`
	SpecialRequirements *string         `json:"special_requirements"`
	Status              EventStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

// NewEvent returns a pending event owned by organizerID. Approval flags start false.
func NewEvent(organizerID, name string, attendeeCount int, city string, budget decimal.Decimal, createdAt time.Time) *Event {
	return &Event{
		OrganizerID:   organizerID,
		Name:          name,
		AttendeeCount: attendeeCount,
		City:          city,
		Budget:        budget,
		Status:        StatusPending,
		CreatedAt:     createdAt,
	}
}

// ServiceApproval pairs whether a service was requested with whether it was approved.
// The two flags are independent; no consistency between them is implied.
type ServiceApproval struct {
	Service  string `json:"service"`
	Needed   bool   `json:"needed"`
	Approved bool   `json:"approved"`
}

// Approvals returns the venue, catering and tech pairs in that order.
func (e *Event) Approvals() []ServiceApproval {
	return []ServiceApproval{
		{Service: "venue", Needed: e.NeedsVenue, Approved: e.VenueApproved},
		{Service: "catering", Needed: e.NeedsCatering, Approved: e.CateringApproved},
		{Service: "tech", Needed: e.NeedsTech, Approved: e.TechApproved},
	}
}

// StatusCounts are the dashboard counters.
// swagger:model StatusCounts
type StatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

// CountStatuses reduces events to dashboard counters by exact status match.
// Events in any other status count only toward Total.
func CountStatuses(events []*Event) StatusCounts {
	c := StatusCounts{Total: len(events)}
	for _, e := range events {
		switch e.Status {
		case StatusPending:
			c.Pending++
		case StatusConfirmed:
			c.Confirmed++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// Dashboard is the organizer's overview.
type Dashboard struct {
	Organizer *Organizer
	Events    []*Event
	Counts    StatusCounts
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByOrganizerID returns the organizer's events, newest first.
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
}

// EventService defines event submission and the dashboard.
type EventService interface {
	CreateEvent(ctx context.Context, e *Event) error
	Dashboard(ctx context.Context, organizerID string) (*Dashboard, error)
	// NotificationStatus returns the webhook delivery for an event owned by organizerID.
	NotificationStatus(ctx context.Context, organizerID, eventID string) (*WebhookDelivery, error)
}
