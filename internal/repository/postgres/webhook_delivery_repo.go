package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventmatch/internal/domain"
)

type webhookDeliveryRepository struct {
	DB *sql.DB
}

// NewWebhookDeliveryRepository returns a domain.WebhookDeliveryRepository backed by the webhook_deliveries table.
func NewWebhookDeliveryRepository(db *sql.DB) domain.WebhookDeliveryRepository {
	return &webhookDeliveryRepository{DB: db}
}

func (r *webhookDeliveryRepository) Enqueue(ctx context.Context, d *domain.WebhookDelivery) error {
	query := `
		INSERT INTO webhook_deliveries (event_id, payload, status, attempts, next_attempt_at, created_at)
		VALUES ($1, $2, $3, 0, $4, $5)
		RETURNING delivery_id
	`
	return r.DB.QueryRowContext(ctx, query,
		d.EventID, string(d.Payload), string(d.Status), d.NextAttemptAt, d.CreatedAt,
	).Scan(&d.ID)
}

// A processing row whose lease expired is claimable again, so a worker that died
// mid-send does not strand its batch.
const claimDueDeliveries = `
	UPDATE webhook_deliveries
	SET status = 'processing', next_attempt_at = $2
	WHERE delivery_id IN (
		SELECT delivery_id FROM webhook_deliveries
		WHERE status IN ('pending', 'processing') AND next_attempt_at <= NOW()
		ORDER BY next_attempt_at ASC, created_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	)
	RETURNING delivery_id, event_id, payload, status, attempts, next_attempt_at, last_error, delivered_at, created_at
`

func (r *webhookDeliveryRepository) ClaimDue(ctx context.Context, limit int, leaseUntil time.Time) ([]*domain.WebhookDelivery, error) {
	rows, err := r.DB.QueryContext(ctx, claimDueDeliveries, limit, leaseUntil)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.WebhookDelivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDelivery(row rowScanner) (*domain.WebhookDelivery, error) {
	d := &domain.WebhookDelivery{}
	var payload, status string
	var lastErr sql.NullString
	var deliveredAt sql.NullTime
	err := row.Scan(&d.ID, &d.EventID, &payload, &status, &d.Attempts, &d.NextAttemptAt, &lastErr, &deliveredAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.Payload = []byte(payload)
	d.Status = domain.DeliveryStatus(status)
	d.LastError = stringPtr(lastErr)
	if deliveredAt.Valid {
		d.DeliveredAt = &deliveredAt.Time
	}
	return d, nil
}

func (r *webhookDeliveryRepository) MarkDelivered(ctx context.Context, d *domain.WebhookDelivery, at time.Time) error {
	query := `
		UPDATE webhook_deliveries
		SET status = 'delivered', attempts = attempts + 1, delivered_at = $3, last_error = NULL
		WHERE delivery_id = $1 AND status = 'processing' AND next_attempt_at = $2
	`
	return r.execLeased(ctx, query, d.ID, d.NextAttemptAt, at)
}

func (r *webhookDeliveryRepository) MarkFailed(ctx context.Context, d *domain.WebhookDelivery, nextAttemptAt time.Time, lastErr string) error {
	query := `
		UPDATE webhook_deliveries
		SET status = 'pending', attempts = attempts + 1, next_attempt_at = $3, last_error = $4
		WHERE delivery_id = $1 AND status = 'processing' AND next_attempt_at = $2
	`
	return r.execLeased(ctx, query, d.ID, d.NextAttemptAt, nextAttemptAt, lastErr)
}

func (r *webhookDeliveryRepository) MarkDead(ctx context.Context, d *domain.WebhookDelivery, lastErr string) error {
	query := `
		UPDATE webhook_deliveries
		SET status = 'dead', attempts = attempts + 1, last_error = $3
		WHERE delivery_id = $1 AND status = 'processing' AND next_attempt_at = $2
	`
	return r.execLeased(ctx, query, d.ID, d.NextAttemptAt, lastErr)
}

// execLeased runs a Mark update fenced on status and lease. A reclaimed row carries a new lease,
// so a stale worker's write matches nothing.
func (r *webhookDeliveryRepository) execLeased(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLeaseLost
	}
	return nil
}

func (r *webhookDeliveryRepository) GetByEventID(ctx context.Context, eventID string) (*domain.WebhookDelivery, error) {
	query := `
		SELECT delivery_id, event_id, payload, status, attempts, next_attempt_at, last_error, delivered_at, created_at
		FROM webhook_deliveries
		WHERE event_id = $1
	`
	d, err := scanDelivery(r.DB.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
