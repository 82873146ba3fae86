package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventmatch/internal/domain"
)

const uniqueViolation = "23505"

type organizerRepository struct {
	DB *sql.DB
}

// NewOrganizerRepository returns a domain.OrganizerRepository implemented with Postgres.
func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{DB: db}
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (full_name, email, company_name, phone, city, typical_event_size, events_per_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING organizer_id
	`
	var eventsPerYear sql.NullInt64
	if o.EventsPerYear != nil {
		eventsPerYear = sql.NullInt64{Int64: int64(*o.EventsPerYear), Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		o.FullName, o.Email, nullString(o.CompanyName), nullString(o.Phone), nullString(o.City),
		nullString(o.TypicalEventSize), eventsPerYear, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

const selectOrganizer = `
	SELECT organizer_id, full_name, email, company_name, phone, city, typical_event_size, events_per_year, created_at
	FROM organizers
`

func (r *organizerRepository) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	return r.getOne(ctx, selectOrganizer+` WHERE email = $1`, email)
}

func (r *organizerRepository) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	return r.getOne(ctx, selectOrganizer+` WHERE organizer_id = $1`, id)
}

func (r *organizerRepository) getOne(ctx context.Context, query string, arg any) (*domain.Organizer, error) {
	o := &domain.Organizer{}
	var company, phone, city, size sql.NullString
	var eventsPerYear sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&o.ID, &o.FullName, &o.Email, &company, &phone, &city, &size, &eventsPerYear, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.CompanyName = stringPtr(company)
	o.Phone = stringPtr(phone)
	o.City = stringPtr(city)
	o.TypicalEventSize = stringPtr(size)
	if eventsPerYear.Valid {
		n := int(eventsPerYear.Int64)
		o.EventsPerYear = &n
	}
	return o, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
