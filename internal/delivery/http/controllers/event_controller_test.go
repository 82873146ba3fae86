package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/delivery/http/middleware"
	"eventmatch/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = &domain.Session{ID: "sess-1", OrganizerID: "org-123"}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		noSession      bool
		wantStatus     int
		wantBodySubstr string
		wantEcho       bool
		checkEvent     func(t *testing.T, e *domain.Event)
	}{
		{
			name:       "success",
			body:       `{"event_name":"Launch Party","event_type":"party","attendee_count":120,"event_city":"Austin","budget":"5000.50","needs_tech":true,"special_requirements":""}`,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, e *domain.Event) {
				assert.Equal(t, "org-123", e.OrganizerID)
				assert.Equal(t, "Launch Party", e.Name)
				require.NotNil(t, e.EventType)
				assert.Equal(t, "party", *e.EventType)
				assert.Equal(t, 120, e.AttendeeCount)
				assert.True(t, decimal.RequireFromString("5000.5").Equal(e.Budget))
				assert.True(t, e.NeedsVenue, "venue defaults to needed")
				assert.True(t, e.NeedsCatering, "catering defaults to needed")
				assert.True(t, e.NeedsTech)
				assert.Nil(t, e.Address)
				assert.Nil(t, e.SpecialRequirements)
			},
		},
		{
			name:       "numeric budget and explicit needs",
			body:       `{"event_name":"Board Meeting","attendee_count":12,"event_city":"Boston","budget":0,"needs_venue":false,"needs_catering":false}`,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, e *domain.Event) {
				assert.True(t, e.Budget.IsZero())
				assert.False(t, e.NeedsVenue)
				assert.False(t, e.NeedsCatering)
				assert.False(t, e.NeedsTech)
				assert.Nil(t, e.EventType)
			},
		},
		{
			name:           "no session in context",
			body:           `{"event_name":"Launch"}`,
			noSession:      true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing required fields",
			body:           `{"event_type":"wedding"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "event_name is required; attendee_count is required; event_city is required; budget is required",
			wantEcho:       true,
		},
		{
			name:           "attendee count below one",
			body:           `{"event_name":"A","attendee_count":0,"event_city":"B","budget":10}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "attendee_count must be at least 1",
			wantEcho:       true,
		},
		{
			name:           "negative budget",
			body:           `{"event_name":"A","attendee_count":5,"event_city":"B","budget":-1}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "budget must be at least 0",
			wantEcho:       true,
		},
		{
			name:           "attendee count beyond integer column",
			body:           `{"event_name":"A","attendee_count":3000000000,"event_city":"B","budget":10}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "attendee_count must be at most 2147483647",
			wantEcho:       true,
		},
		{
			name:           "budget beyond column precision",
			body:           `{"event_name":"A","attendee_count":5,"event_city":"B","budget":1000000000000}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "budget is too large",
			wantEcho:       true,
		},
		{
			name:           "budget with fractions of a cent",
			body:           `{"event_name":"A","attendee_count":5,"event_city":"B","budget":"10.005"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "at most 2 decimal places",
			wantEcho:       true,
		},
		{
			name:           "unknown event type",
			body:           `{"event_name":"A","event_type":"rave","attendee_count":5,"event_city":"B","budget":1}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "event_type must be one of",
			wantEcho:       true,
		},
		{
			name:           "status cannot be supplied",
			body:           `{"event_name":"A","attendee_count":5,"event_city":"B","budget":1,"status":"confirmed"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "insert failure shows static message",
			body:           `{"event_name":"Launch","attendee_count":5,"event_city":"Austin","budget":1}`,
			fakeErr:        errors.New("pq: new row violates check constraint"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: msgEventCreateFailed,
			wantEcho:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if !tt.noSession {
				req = req.WithContext(middleware.SetSession(req.Context(), testSession))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var event domain.Event
			envelope := decodeEnvelope(t, rr, &event)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				assert.Equal(t, "ev-created", event.ID)
				assert.Equal(t, domain.StatusPending, event.Status)
				form, ok := envelope.Form.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "", form["event_name"], "form is reset after success")
				assert.Equal(t, true, form["needs_venue"])
				tt.checkEvent(t, fake.lastCreateEvent)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			if tt.wantEcho {
				form, ok := envelope.Form.(map[string]any)
				require.True(t, ok, "failure echoes the submitted form")
				assert.Contains(t, tt.body, form["event_name"].(string))
			} else {
				assert.Nil(t, envelope.Form)
			}
		})
	}
}

func TestEventController_Dashboard(t *testing.T) {
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	dash := &domain.Dashboard{
		Organizer: &domain.Organizer{ID: "org-123", FullName: "Ada"},
		Events: []*domain.Event{
			{ID: "ev-2", OrganizerID: "org-123", Name: "Newer", Status: domain.StatusConfirmed, NeedsVenue: true, VenueApproved: true, CreatedAt: created.Add(time.Hour)},
			{ID: "ev-1", OrganizerID: "org-123", Name: "Older", Status: domain.StatusPending, NeedsTech: false, TechApproved: true, CreatedAt: created},
		},
		Counts: domain.StatusCounts{Total: 2, Pending: 1, Confirmed: 1},
	}

	tests := []struct {
		name       string
		fakeErr    error
		noSession  bool
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "no session", noSession: true, wantStatus: http.StatusUnauthorized},
		{name: "organizer gone", fakeErr: domain.ErrNotFound, wantStatus: http.StatusUnauthorized},
		{name: "service error", fakeErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{dashboard: dash, dashboardErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if !tt.noSession {
				req = req.WithContext(middleware.SetSession(req.Context(), testSession))
			}
			rr := httptest.NewRecorder()

			ctrl.Dashboard(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var resp struct {
				Organizer *domain.Organizer `json:"organizer"`
				Events    []struct {
					ID        string                   `json:"event_id"`
					Status    domain.EventStatus       `json:"status"`
					Approvals []domain.ServiceApproval `json:"approvals"`
				} `json:"events"`
				Counts domain.StatusCounts `json:"counts"`
			}
			envelope := decodeEnvelope(t, rr, &resp)
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				return
			}
			assert.Equal(t, "org-123", fake.lastDashboardOrgID)
			assert.Equal(t, "Ada", resp.Organizer.FullName)
			require.Len(t, resp.Events, 2)
			assert.Equal(t, "ev-2", resp.Events[0].ID)
			assert.Equal(t, dash.Counts, resp.Counts)
			assert.Equal(t, []domain.ServiceApproval{
				{Service: "venue", Needed: true, Approved: true},
				{Service: "catering", Needed: false, Approved: false},
				{Service: "tech", Needed: false, Approved: false},
			}, resp.Events[0].Approvals)
			assert.Equal(t, domain.ServiceApproval{Service: "tech", Needed: false, Approved: true}, resp.Events[1].Approvals[2],
				"approval is shown even when the service was not requested")
		})
	}
}

func TestEventController_NotificationStatus(t *testing.T) {
	const eventID = "6f1c2a9e-7d4b-4c1e-9a2f-0b8e3d5c7a11"
	delivered := time.Date(2025, 2, 1, 0, 0, 5, 0, time.UTC)

	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", eventID: eventID, wantStatus: http.StatusOK},
		{name: "malformed id", eventID: "not-a-uuid", wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "not owned or missing", eventID: eventID, fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "service error", eventID: eventID, fakeErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{
				delivery:    &domain.WebhookDelivery{ID: "del-1", EventID: eventID, Status: domain.DeliveryDelivered, Attempts: 1, DeliveredAt: &delivered},
				deliveryErr: tt.fakeErr,
			}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.eventID+"/notification", nil)
			req.SetPathValue("eventID", tt.eventID)
			req = req.WithContext(middleware.SetSession(req.Context(), testSession))
			rr := httptest.NewRecorder()

			ctrl.NotificationStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var d domain.WebhookDelivery
			envelope := decodeEnvelope(t, rr, &d)
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, "org-123", fake.lastDeliveryOrgID)
			assert.Equal(t, eventID, fake.lastDeliveryEvent)
			assert.Equal(t, domain.DeliveryDelivered, d.Status)
			assert.Equal(t, 1, d.Attempts)
		})
	}
}
