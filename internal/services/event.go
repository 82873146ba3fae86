package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventmatch/internal/domain"
	"eventmatch/internal/metrics"
)

type eventService struct {
	eventRepo      domain.EventRepository
	organizerRepo  domain.OrganizerRepository
	deliveryRepo   domain.WebhookDeliveryRepository
	notifications  domain.NotificationService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(
	eventRepo domain.EventRepository,
	organizerRepo domain.OrganizerRepository,
	deliveryRepo domain.WebhookDeliveryRepository,
	notifications domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		organizerRepo:  organizerRepo,
		deliveryRepo:   deliveryRepo,
		notifications:  notifications,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CreateEvent inserts the event as pending with no approvals and queues its webhook notification.
// A queueing failure is logged and does not fail the call.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.OrganizerID == "" {
		return fmt.Errorf("%w: event organizer is required", domain.ErrInvalidInput)
	}

	event.Status = domain.StatusPending
	event.VenueApproved = false
	event.CateringApproved = false
	event.TechApproved = false
	event.CreatedAt = s.now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	metrics.EventsCreatedTotal.Inc()

	if s.notifications != nil {
		if _, err := s.notifications.Enqueue(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "event notification not queued", "event_id", event.ID, "err", err)
		}
	}
	return nil
}

func (s *eventService) Dashboard(ctx context.Context, organizerID string) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	organizer, err := s.organizerRepo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organizer: %w", err)
	}
	events, err := s.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return &domain.Dashboard{
		Organizer: organizer,
		Events:    events,
		Counts:    domain.CountStatuses(events),
	}, nil
}

func (s *eventService) NotificationStatus(ctx context.Context, organizerID, eventID string) (*domain.WebhookDelivery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	// Other organizers' events are reported as missing.
	if event.OrganizerID != organizerID {
		return nil, domain.ErrNotFound
	}
	d, err := s.deliveryRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load delivery: %w", err)
	}
	return d, nil
}
