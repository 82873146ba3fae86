package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"eventmatch/internal/domain"
	"eventmatch/internal/metrics"
)

// NotificationConfig controls webhook dispatch.
type NotificationConfig struct {
	MaxAttempts  int
	BatchSize    int
	PollInterval time.Duration
	SendTimeout  time.Duration
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
}

func (c NotificationConfig) withDefaults() NotificationConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 10 * time.Second
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 5 * time.Second
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 30 * time.Minute
	}
	return c
}

type notificationService struct {
	repo     domain.WebhookDeliveryRepository
	notifier domain.Notifier
	logger   *slog.Logger
	cfg      NotificationConfig
	now      func() time.Time
	jitter   func(d time.Duration) time.Duration
}

// NewNotificationService returns a NotificationService that stores deliveries in repo and sends them with notifier.
func NewNotificationService(repo domain.WebhookDeliveryRepository, notifier domain.Notifier, logger *slog.Logger, cfg NotificationConfig) domain.NotificationService {
	return &notificationService{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "webhook_dispatcher"),
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		jitter:   jitter,
	}
}

func (s *notificationService) Enqueue(ctx context.Context, e *domain.Event) (*domain.WebhookDelivery, error) {
	payload, err := json.Marshal(domain.NewEventNotification(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification: %w", err)
	}
	now := s.now()
	d := &domain.WebhookDelivery{
		EventID:       e.ID,
		Payload:       payload,
		Status:        domain.DeliveryPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}
	if err := s.repo.Enqueue(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return d, nil
}

// leaseDuration covers sending a full batch one row at a time, plus one send of slack.
func (s *notificationService) leaseDuration() time.Duration {
	return time.Duration(s.cfg.BatchSize+1) * s.cfg.SendTimeout
}

// DispatchDue claims a batch and sends it in order. Rows whose lease has run out before
// their turn are left for a later claim. It returns the number of rows sent.
func (s *notificationService) DispatchDue(ctx context.Context) (int, error) {
	lease := s.now().Add(s.leaseDuration()).Truncate(time.Microsecond)
	batch, err := s.repo.ClaimDue(ctx, s.cfg.BatchSize, lease)
	if err != nil {
		return 0, fmt.Errorf("failed to claim deliveries: %w", err)
	}
	for i, d := range batch {
		// A send may take up to SendTimeout; it must finish inside the lease.
		if s.now().Add(s.cfg.SendTimeout).After(d.NextAttemptAt) {
			s.logger.WarnContext(ctx, "lease running out, leaving deliveries for the next claim", "remaining", len(batch)-i)
			return i, nil
		}
		s.dispatch(ctx, d)
	}
	return len(batch), nil
}

func (s *notificationService) dispatch(ctx context.Context, d *domain.WebhookDelivery) {
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	sendErr := s.notifier.Notify(sendCtx, d.ID, d.Payload)
	cancel()

	log := s.logger.With("delivery_id", d.ID, "event_id", d.EventID)
	if sendErr == nil {
		if err := s.repo.MarkDelivered(ctx, d, s.now()); err != nil {
			s.logMarkError(ctx, log, "mark delivered failed", err)
			return
		}
		metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
		log.InfoContext(ctx, "webhook delivered")
		return
	}

	attempt := d.Attempts + 1
	if attempt >= s.cfg.MaxAttempts {
		if err := s.repo.MarkDead(ctx, d, sendErr.Error()); err != nil {
			s.logMarkError(ctx, log, "mark dead failed", err)
			return
		}
		metrics.WebhookDeliveriesTotal.WithLabelValues("dead").Inc()
		log.ErrorContext(ctx, "webhook delivery abandoned", "attempts", attempt, "err", sendErr)
		return
	}

	next := s.now().Add(s.backoff(attempt))
	if err := s.repo.MarkFailed(ctx, d, next, sendErr.Error()); err != nil {
		s.logMarkError(ctx, log, "reschedule failed", err)
		return
	}
	metrics.WebhookDeliveriesTotal.WithLabelValues("retry").Inc()
	log.WarnContext(ctx, "webhook delivery failed, will retry", "attempts", attempt, "next_attempt_at", next, "err", sendErr)
}

func (s *notificationService) logMarkError(ctx context.Context, log *slog.Logger, msg string, err error) {
	if errors.Is(err, domain.ErrLeaseLost) {
		metrics.WebhookDeliveriesTotal.WithLabelValues("lease_lost").Inc()
		log.WarnContext(ctx, "delivery was reclaimed by another worker, result discarded")
		return
	}
	log.ErrorContext(ctx, msg, "err", err)
}

// backoff doubles from BaseBackoff per attempt, capped at MaxBackoff, then applies jitter.
func (s *notificationService) backoff(attempt int) time.Duration {
	d := time.Duration(float64(s.cfg.BaseBackoff) * math.Pow(2, float64(attempt-1)))
	if d <= 0 || d > s.cfg.MaxBackoff {
		d = s.cfg.MaxBackoff
	}
	return d + s.jitter(d)
}

// jitter returns a random offset within +/-10% of d.
func jitter(d time.Duration) time.Duration {
	if d < 10 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(d/5))) - d/10
}

func (s *notificationService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "started", "poll_interval", s.cfg.PollInterval, "max_attempts", s.cfg.MaxAttempts)
	var lastErr string
	var lastAt time.Time
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopped")
			return
		case <-ticker.C:
			if _, err := s.DispatchDue(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				if err.Error() != lastErr || time.Since(lastAt) > 10*time.Second {
					s.logger.WarnContext(ctx, "dispatch batch failed", "err", err)
					lastErr = err.Error()
					lastAt = time.Now()
				}
			} else {
				lastErr = ""
			}
		}
	}
}
