package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"eventmatch/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeOrganizerRepo implements domain.OrganizerRepository for tests.
type fakeOrganizerRepo struct {
	byID      map[string]*domain.Organizer
	createErr error
	getErr    error
}

func newFakeOrganizerRepo(orgs ...*domain.Organizer) *fakeOrganizerRepo {
	f := &fakeOrganizerRepo{byID: make(map[string]*domain.Organizer)}
	for _, o := range orgs {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOrganizerRepo) Create(ctx context.Context, o *domain.Organizer) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == o.Email {
			return domain.ErrDuplicateEmail
		}
	}
	o.ID = fmt.Sprintf("org-%d", len(f.byID)+1)
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrganizerRepo) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, o := range f.byID {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrganizerRepo) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

// fakeSessionRepo implements domain.SessionRepository for tests.
type fakeSessionRepo struct {
	byID      map[string]*domain.Session
	createErr error
	getErr    error
	revokeErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sess-%d", len(f.byID)+1)
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	s, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.RevokedAt == nil {
		s.RevokedAt = &at
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(organizerID, sessionID string, expiresAt time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + organizerID + "-" + sessionID, nil
}

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	organizerID string
	sessionID   string
	err         error
}

func (f *fakeTokenVerifier) Verify(token string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.organizerID, f.sessionID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	welcomes      []*domain.OrganizerWelcomeEmailData
	confirmations []*domain.VendorConfirmationEmailData
	err           error
}

func (f *fakeEmailService) SendOrganizerWelcome(ctx context.Context, data *domain.OrganizerWelcomeEmailData) error {
	f.welcomes = append(f.welcomes, data)
	return f.err
}

func (f *fakeEmailService) SendVendorConfirmation(ctx context.Context, data *domain.VendorConfirmationEmailData) error {
	f.confirmations = append(f.confirmations, data)
	return f.err
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	list      []*domain.Event
	createErr error
	getErr    error
	listErr   error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event)}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", len(f.byID)+1)
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*domain.Event{}
	for _, e := range f.list {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeDeliveryRepo implements domain.WebhookDeliveryRepository for tests.
type fakeDeliveryRepo struct {
	enqueued   []*domain.WebhookDelivery
	due        []*domain.WebhookDelivery
	byEventID  map[string]*domain.WebhookDelivery
	enqueueErr error
	claimErr   error
	markErr    error

	claimLimit int
	claimLease time.Time
	delivered  map[string]time.Time
	failed     map[string]time.Time
	dead       map[string]string
	lastErrs   map[string]string
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{
		byEventID: make(map[string]*domain.WebhookDelivery),
		delivered: make(map[string]time.Time),
		failed:    make(map[string]time.Time),
		dead:      make(map[string]string),
		lastErrs:  make(map[string]string),
	}
}

func (f *fakeDeliveryRepo) Enqueue(ctx context.Context, d *domain.WebhookDelivery) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	d.ID = fmt.Sprintf("del-%d", len(f.enqueued)+1)
	f.enqueued = append(f.enqueued, d)
	f.byEventID[d.EventID] = d
	return nil
}

func (f *fakeDeliveryRepo) ClaimDue(ctx context.Context, limit int, leaseUntil time.Time) ([]*domain.WebhookDelivery, error) {
	f.claimLimit = limit
	f.claimLease = leaseUntil
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	batch := f.due
	f.due = nil
	for _, d := range batch {
		d.Status = domain.DeliveryProcessing
		d.NextAttemptAt = leaseUntil
	}
	return batch, nil
}

func (f *fakeDeliveryRepo) MarkDelivered(ctx context.Context, d *domain.WebhookDelivery, at time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.delivered[d.ID] = at
	return nil
}

func (f *fakeDeliveryRepo) MarkFailed(ctx context.Context, d *domain.WebhookDelivery, nextAttemptAt time.Time, lastErr string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.failed[d.ID] = nextAttemptAt
	f.lastErrs[d.ID] = lastErr
	return nil
}

func (f *fakeDeliveryRepo) MarkDead(ctx context.Context, d *domain.WebhookDelivery, lastErr string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.dead[d.ID] = lastErr
	return nil
}

func (f *fakeDeliveryRepo) GetByEventID(ctx context.Context, eventID string) (*domain.WebhookDelivery, error) {
	if d, ok := f.byEventID[eventID]; ok {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

// fakeNotifier implements domain.Notifier for tests. errs is keyed by delivery id.
type fakeNotifier struct {
	errs  map[string]error
	calls []string
}

func (f *fakeNotifier) Notify(ctx context.Context, deliveryID string, payload []byte) error {
	f.calls = append(f.calls, deliveryID)
	return f.errs[deliveryID]
}

// fakeNotificationService implements domain.NotificationService for tests.
type fakeNotificationService struct {
	enqueued   []*domain.Event
	enqueueErr error
}

func (f *fakeNotificationService) Enqueue(ctx context.Context, e *domain.Event) (*domain.WebhookDelivery, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.enqueued = append(f.enqueued, e)
	return &domain.WebhookDelivery{ID: "del-1", EventID: e.ID, Status: domain.DeliveryPending}, nil
}

func (f *fakeNotificationService) DispatchDue(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeNotificationService) Run(ctx context.Context) {}

// fakeVendorRepo implements domain.VendorRepository for tests.
type fakeVendorRepo struct {
	created   []*domain.Vendor
	createErr error
}

func (f *fakeVendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	if f.createErr != nil {
		return f.createErr
	}
	v.ID = fmt.Sprintf("%s-%d", v.Kind, len(f.created)+1)
	f.created = append(f.created, v)
	return nil
}
