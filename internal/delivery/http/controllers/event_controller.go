package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/delivery/http/middleware"
	"eventmatch/internal/domain"
)

const msgEventCreateFailed = "Failed to create event. Please try again."

// CreateEventRequest is the request body for POST /events. The organizer comes from the session;
// status and approval flags are server-set.
type CreateEventRequest struct {
	EventName           string           `json:"event_name"`
	EventType           string           `json:"event_type"`
	AttendeeCount       *int             `json:"attendee_count"`
	EventCity           string           `json:"event_city"`
	EventAddress        string           `json:"event_address"`
	Budget              *decimal.Decimal `json:"budget" swaggertype:"number"`
	NeedsVenue          *bool            `json:"needs_venue"`
	NeedsCatering       *bool            `json:"needs_catering"`
	NeedsTech           *bool            `json:"needs_tech"`
	SpecialRequirements string           `json:"special_requirements"`
}

func boolPtr(b bool) *bool { return &b }

// NewEventForm returns the blank event form. Venue and catering start checked.
func NewEventForm() CreateEventRequest {
	return CreateEventRequest{
		NeedsVenue:    boolPtr(true),
		NeedsCatering: boolPtr(true),
		NeedsTech:     boolPtr(false),
	}
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EventName) == "" {
		errs = append(errs, "event_name is required")
	}
	if c.EventType != "" && !slices.Contains(domain.EventTypes, c.EventType) {
		errs = append(errs, fmt.Sprintf("event_type must be one of: %s", strings.Join(domain.EventTypes, ", ")))
	}
	if c.AttendeeCount == nil {
		errs = append(errs, "attendee_count is required")
	} else if *c.AttendeeCount < 1 {
		errs = append(errs, "attendee_count must be at least 1")
	} else if *c.AttendeeCount > domain.MaxStoredInt {
		errs = append(errs, fmt.Sprintf("attendee_count must be at most %d", domain.MaxStoredInt))
	}
	if strings.TrimSpace(c.EventCity) == "" {
		errs = append(errs, "event_city is required")
	}
	switch {
	case c.Budget == nil:
		errs = append(errs, "budget is required")
	case c.Budget.IsNegative():
		errs = append(errs, "budget must be at least 0")
	case !c.Budget.Equal(c.Budget.Truncate(domain.MoneyScale)):
		errs = append(errs, fmt.Sprintf("budget must have at most %d decimal places", domain.MoneyScale))
	case c.Budget.GreaterThanOrEqual(domain.MoneyLimit):
		errs = append(errs, "budget is too large")
	}
	return errs
}

func (c CreateEventRequest) event(organizerID string) *domain.Event {
	form := NewEventForm()
	e := domain.NewEvent(organizerID, strings.TrimSpace(c.EventName), *c.AttendeeCount, strings.TrimSpace(c.EventCity), *c.Budget, time.Now())
	e.EventType = optional(c.EventType)
	e.Address = optional(c.EventAddress)
	e.SpecialRequirements = optional(c.SpecialRequirements)
	e.NeedsVenue = *cmpOr(c.NeedsVenue, form.NeedsVenue)
	e.NeedsCatering = *cmpOr(c.NeedsCatering, form.NeedsCatering)
	e.NeedsTech = *cmpOr(c.NeedsTech, form.NeedsTech)
	return e
}

func cmpOr(v, fallback *bool) *bool {
	if v != nil {
		return v
	}
	return fallback
}

// EventFormResponse is the response envelope for POST /events.
type EventFormResponse struct {
	Data  *domain.Event      `json:"data"`
	Error *helpers.APIError  `json:"error"`
	Form  CreateEventRequest `json:"form"`
}

// EventView is an event with its per-service approval pairs.
type EventView struct {
	*domain.Event
	Approvals []domain.ServiceApproval `json:"approvals"`
}

// DashboardResponse is the response body for GET /dashboard.
type DashboardResponse struct {
	Organizer *domain.Organizer   `json:"organizer"`
	Events    []EventView         `json:"events"`
	Counts    domain.StatusCounts `json:"counts"`
}

// DashboardSuccessResponse is the success response envelope for GET /dashboard (200).
type DashboardSuccessResponse struct {
	Data  DashboardResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// NotificationSuccessResponse is the success response envelope for GET /events/{eventID}/notification (200).
type NotificationSuccessResponse struct {
	Data  *domain.WebhookDelivery `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Submit an event
// @Description Creates an event for the signed-in organizer. Status is always pending and approval flags false. The matching webhook is notified asynchronously.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventFormResponse "data contains the created event; form is blank"
// @Failure 400 {object} controllers.EventFormResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} controllers.EventFormResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	req := NewEventForm()
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if msg, ok := helpers.Validate(req); !ok {
		helpers.WriteFormError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, msg, req)
		return
	}

	event := req.event(session.OrganizerID)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteFormError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgEventCreateFailed, req)
		return
	}
	helpers.WriteFormSuccess(w, http.StatusCreated, event, NewEventForm())
}

// Dashboard godoc
// @Summary Organizer dashboard
// @Description Returns the signed-in organizer, all of their events newest first with approval pairs, and status counters.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DashboardSuccessResponse "data contains organizer, events and counts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard [get]
func (c *EventController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	dash, err := c.Service.Dashboard(r.Context(), session.OrganizerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "organizer no longer exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return
	}
	views := make([]EventView, 0, len(dash.Events))
	for _, e := range dash.Events {
		views = append(views, EventView{Event: e, Approvals: e.Approvals()})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DashboardResponse{
		Organizer: dash.Organizer,
		Events:    views,
		Counts:    dash.Counts,
	})
}

// NotificationStatus godoc
// @Summary Webhook delivery status of an event
// @Description Returns the matching-webhook delivery for one of the signed-in organizer's events.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.NotificationSuccessResponse "data contains the delivery"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/notification [get]
func (c *EventController) NotificationStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if _, err := uuid.Parse(eventID); err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	d, err := c.Service.NotificationStatus(r.Context(), session.OrganizerID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, d)
}
