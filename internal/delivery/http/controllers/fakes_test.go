package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// decodeEnvelope decodes the response envelope and unmarshals its data into data when non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if data != nil {
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, data))
	}
	return envelope
}

// fakeOrganizerService implements domain.OrganizerService for handler tests.
type fakeOrganizerService struct {
	registerErr    error
	signInErr      error
	signInResult   *domain.SignInResult
	refreshErr     error
	refreshResult  *domain.Organizer
	signOutErr     error
	lastRegistered *domain.Organizer
	lastEmail      string
	lastSignOut    *domain.Session
}

func (f *fakeOrganizerService) Register(ctx context.Context, o *domain.Organizer) error {
	f.lastRegistered = o
	if f.registerErr != nil {
		return f.registerErr
	}
	o.ID = "org-created"
	return nil
}

func (f *fakeOrganizerService) SignIn(ctx context.Context, email string) (*domain.SignInResult, error) {
	f.lastEmail = email
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.signInResult, nil
}

func (f *fakeOrganizerService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	return nil, domain.ErrSessionRevoked
}

func (f *fakeOrganizerService) Refresh(ctx context.Context, session *domain.Session) (*domain.Organizer, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.refreshResult, nil
}

func (f *fakeOrganizerService) SignOut(ctx context.Context, session *domain.Session) error {
	f.lastSignOut = session
	return f.signOutErr
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr     error
	lastCreateEvent    *domain.Event
	dashboard          *domain.Dashboard
	dashboardErr       error
	lastDashboardOrgID string
	delivery           *domain.WebhookDelivery
	deliveryErr        error
	lastDeliveryOrgID  string
	lastDeliveryEvent  string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	f.lastCreateEvent = e
	if f.createEventErr != nil {
		return f.createEventErr
	}
	e.ID = "ev-created"
	e.Status = domain.StatusPending
	return nil
}

func (f *fakeEventService) Dashboard(ctx context.Context, organizerID string) (*domain.Dashboard, error) {
	f.lastDashboardOrgID = organizerID
	if f.dashboardErr != nil {
		return nil, f.dashboardErr
	}
	return f.dashboard, nil
}

func (f *fakeEventService) NotificationStatus(ctx context.Context, organizerID, eventID string) (*domain.WebhookDelivery, error) {
	f.lastDeliveryOrgID = organizerID
	f.lastDeliveryEvent = eventID
	if f.deliveryErr != nil {
		return nil, f.deliveryErr
	}
	return f.delivery, nil
}

// fakeVendorService implements domain.VendorService for handler tests. Schemas are the real ones.
type fakeVendorService struct {
	registerErr  error
	lastRegister *domain.Vendor
}

func (f *fakeVendorService) Schema(kind domain.VendorKind) (domain.VendorSchema, error) {
	return domain.SchemaFor(kind)
}

func (f *fakeVendorService) Register(ctx context.Context, v *domain.Vendor) error {
	f.lastRegister = v
	if f.registerErr != nil {
		return f.registerErr
	}
	v.ID = "vendor-created"
	return nil
}
