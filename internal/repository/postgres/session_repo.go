package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventmatch/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a domain.SessionRepository implemented with Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (organizer_id, issued_at, expires_at)
		VALUES ($1, $2, $3)
		RETURNING session_id
	`
	return r.DB.QueryRowContext(ctx, query, s.OrganizerID, s.IssuedAt, s.ExpiresAt).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT session_id, organizer_id, issued_at, expires_at, revoked_at
		FROM sessions
		WHERE session_id = $1
	`
	s := &domain.Session{}
	var revoked sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.OrganizerID, &s.IssuedAt, &s.ExpiresAt, &revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if revoked.Valid {
		s.RevokedAt = &revoked.Time
	}
	return s, nil
}

// Revoke marks the session revoked. Revoking an already revoked session keeps the first timestamp.
func (r *sessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE sessions SET revoked_at = COALESCE(revoked_at, $2) WHERE session_id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
