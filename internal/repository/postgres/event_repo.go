package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmatch/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Create inserts the event. Approval flags are left to their column defaults.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (organizer_id, event_name, event_type, attendee_count, event_city, event_address, budget,
			needs_venue, needs_catering, needs_tech, special_requirements, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING event_id, venue_approved, catering_approved, tech_approved
	`
	return r.DB.QueryRowContext(ctx, query,
		e.OrganizerID, e.Name, nullString(e.EventType), e.AttendeeCount, e.City, nullString(e.Address), e.Budget,
		e.NeedsVenue, e.NeedsCatering, e.NeedsTech, nullString(e.SpecialRequirements), string(e.Status), e.CreatedAt,
	).Scan(&e.ID, &e.VenueApproved, &e.CateringApproved, &e.TechApproved)
}

const selectEvent = `
	SELECT event_id, organizer_id, event_name, event_type, attendee_count, event_city, event_address, budget,
		needs_venue, needs_catering, needs_tech, venue_approved, catering_approved, tech_approved,
		special_requirements, status, created_at
	FROM events
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var eventType, address, requirements sql.NullString
	var status string
	err := row.Scan(
		&e.ID, &e.OrganizerID, &e.Name, &eventType, &e.AttendeeCount, &e.City, &address, &e.Budget,
		&e.NeedsVenue, &e.NeedsCatering, &e.NeedsTech, &e.VenueApproved, &e.CateringApproved, &e.TechApproved,
		&requirements, &status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EventType = stringPtr(eventType)
	e.Address = stringPtr(address)
	e.SpecialRequirements = stringPtr(requirements)
	e.Status = domain.EventStatus(status)
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, err := scanEvent(r.DB.QueryRowContext(ctx, selectEvent+` WHERE event_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := selectEvent + `
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
