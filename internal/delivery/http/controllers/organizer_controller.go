package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/domain"
)

const (
	msgDuplicateEmail = "An account with this email already exists."
	msgGenericFailure = "An error occurred. Please try again."
)

// RegisterOrganizerRequest is the request body for POST /organizers.
// Empty optional fields are stored as null.
type RegisterOrganizerRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	CompanyName      string `json:"company_name"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	TypicalEventSize string `json:"typical_event_size"`
	EventsPerYear    *int   `json:"events_per_year"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c RegisterOrganizerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	} else if !domain.IsEmail(strings.TrimSpace(c.Email)) {
		errs = append(errs, "invalid email format")
	}
	if c.TypicalEventSize != "" && !slices.Contains(domain.TypicalEventSizes, c.TypicalEventSize) {
		errs = append(errs, fmt.Sprintf("typical_event_size must be one of: %s", strings.Join(domain.TypicalEventSizes, ", ")))
	}
	if c.EventsPerYear != nil && *c.EventsPerYear < 0 {
		errs = append(errs, "events_per_year must be at least 0")
	}
	return errs
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (c RegisterOrganizerRequest) organizer() *domain.Organizer {
	o := domain.NewOrganizer(c.FullName, c.Email, time.Now())
	o.CompanyName = optional(c.CompanyName)
	o.Phone = optional(c.Phone)
	o.City = optional(c.City)
	o.TypicalEventSize = optional(c.TypicalEventSize)
	o.EventsPerYear = c.EventsPerYear
	return o
}

// OrganizerFormResponse is the response envelope for POST /organizers.
type OrganizerFormResponse struct {
	Data  *domain.Organizer        `json:"data"`
	Error *helpers.APIError        `json:"error"`
	Form  RegisterOrganizerRequest `json:"form"`
}

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register an organizer
// @Description Creates an organizer account. Email must be unique. On success form is blank; on failure form echoes the submitted values.
// @Tags organizers
// @Accept json
// @Produce json
// @Param organizer body RegisterOrganizerRequest true "Organizer data"
// @Success 201 {object} controllers.OrganizerFormResponse "data contains the created organizer"
// @Failure 400 {object} controllers.OrganizerFormResponse "error.code: bad_request"
// @Failure 409 {object} controllers.OrganizerFormResponse "error.code: conflict"
// @Failure 500 {object} controllers.OrganizerFormResponse "error.code: internal_error"
// @Router /organizers [post]
func (c *OrganizerController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterOrganizerRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if msg, ok := helpers.Validate(req); !ok {
		helpers.WriteFormError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, msg, req)
		return
	}

	organizer := req.organizer()
	if err := c.Service.Register(r.Context(), organizer); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteFormError(w, http.StatusConflict, helpers.ErrCodeConflict, msgDuplicateEmail, req)
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteFormError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error(), req)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteFormError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure, req)
		}
		return
	}
	helpers.WriteFormSuccess(w, http.StatusCreated, organizer, RegisterOrganizerRequest{})
}
