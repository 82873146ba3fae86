package domain

import (
	"context"
	"encoding/json"
	"time"
)

// EventNotification is the flat snapshot of a new event posted to the matching webhook.
type EventNotification struct {
	EventID             string      `json:"event_id"`
	OrganizerID         string      `json:"organizer_id"`
	EventName           string      `json:"event_name"`
	EventType           *string     `json:"event_type"`
	AttendeeCount       int         `json:"attendee_count"`
	EventCity           string      `json:"event_city"`
	EventAddress        *string     `json:"event_address"`
	Budget              json.Number `json:"budget"`
	NeedsVenue          bool        `json:"needs_venue"`
	NeedsCatering       bool        `json:"needs_catering"`
	NeedsTech           bool        `json:"needs_tech"`
	SpecialRequirements *string     `json:"special_requirements"`
	Status              EventStatus `json:"status"`
}

// NewEventNotification flattens the inserted event row into the webhook payload.
// Budget is written as a bare JSON number with the stored precision.
func NewEventNotification(e *Event) *EventNotification {
	return &EventNotification{
		EventID:             e.ID,
		OrganizerID:         e.OrganizerID,
		EventName:           e.Name,
		EventType:           e.EventType,
		AttendeeCount:       e.AttendeeCount,
		EventCity:           e.City,
		EventAddress:        e.Address,
		Budget:              json.Number(e.Budget.String()),
		NeedsVenue:          e.NeedsVenue,
		NeedsCatering:       e.NeedsCatering,
		NeedsTech:           e.NeedsTech,
		SpecialRequirements: e.SpecialRequirements,
		Status:              e.Status,
	}
}

// DeliveryStatus is the state of a webhook delivery.
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryDead       DeliveryStatus = "dead"
)

// WebhookDelivery is one outbound notification and its delivery state.
// swagger:model WebhookDelivery
type WebhookDelivery struct {
	ID            string         `json:"delivery_id"`
	EventID       string         `json:"event_id"`
	Payload       []byte         `json:"-"`
	Status        DeliveryStatus `json:"status"`
	Attempts      int            `json:"attempts"`
	NextAttemptAt time.Time      `json:"next_attempt_at"`
	LastError     *string        `json:"last_error"`
	DeliveredAt   *time.Time     `json:"delivered_at"`
	CreatedAt     time.Time      `json:"created_at"`
}

// WebhookDeliveryRepository stores outbound notifications.
type WebhookDeliveryRepository interface {
	Enqueue(ctx context.Context, d *WebhookDelivery) error
	// ClaimDue marks up to limit due deliveries as processing until leaseUntil and returns them.
	// NextAttemptAt of a claimed row holds its lease.
	ClaimDue(ctx context.Context, limit int, leaseUntil time.Time) ([]*WebhookDelivery, error)
	// The Mark methods only update d while it is still processing under the lease it was claimed with.
	// Otherwise they return ErrLeaseLost.
	MarkDelivered(ctx context.Context, d *WebhookDelivery, at time.Time) error
	MarkFailed(ctx context.Context, d *WebhookDelivery, nextAttemptAt time.Time, lastErr string) error
	MarkDead(ctx context.Context, d *WebhookDelivery, lastErr string) error
	GetByEventID(ctx context.Context, eventID string) (*WebhookDelivery, error)
}

// Notifier sends a payload to the matching webhook. Only success or failure is observed.
type Notifier interface {
	Notify(ctx context.Context, deliveryID string, payload []byte) error
}

// NotificationService queues and dispatches event notifications.
type NotificationService interface {
	// Enqueue records a pending delivery for the event.
	Enqueue(ctx context.Context, e *Event) (*WebhookDelivery, error)
	// DispatchDue sends one batch of due deliveries and returns how many were attempted.
	DispatchDue(ctx context.Context) (int, error)
	// Run dispatches on every tick until ctx is done.
	Run(ctx context.Context)
}
