package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/delivery/http/middleware"
	"eventmatch/internal/domain"
)

const msgEmailNotFound = "Email not found. Please register first or check your email address."

// Redirect tells the client where to go after a successful sign-in and how long to wait.
type Redirect struct {
	Path    string `json:"path"`
	DelayMS int    `json:"delay_ms"`
}

var dashboardRedirect = Redirect{Path: "/dashboard", DelayMS: 1000}

// SignInRequest is the request body for POST /auth/signin.
type SignInRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (c SignInRequest) Validate() []string {
	if strings.TrimSpace(c.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

// SignInResponse is the response body for POST /auth/signin.
type SignInResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Organizer *domain.Organizer `json:"organizer"`
	Redirect  Redirect          `json:"redirect"`
}

// SignInSuccessResponse is the success response envelope for POST /auth/signin (200).
type SignInSuccessResponse struct {
	Data  SignInResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionResponse is the response body for GET /auth/session.
type SessionResponse struct {
	Session   *domain.Session   `json:"session"`
	Organizer *domain.Organizer `json:"organizer"`
}

// SessionSuccessResponse is the success response envelope for GET /auth/session (200).
type SessionSuccessResponse struct {
	Data  SessionResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewAuthController(logger *slog.Logger, svc domain.OrganizerService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignIn godoc
// @Summary Sign in with an email address
// @Description Looks up the organizer by email and opens a session. There is no password. On success the client should follow redirect after delay_ms.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Email"
// @Success 200 {object} controllers.SignInSuccessResponse "data contains token, organizer and redirect"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signin [post]
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.SignIn(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerLookup) {
			if !errors.Is(err, domain.ErrNotFound) {
				c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			}
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgEmailNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SignInResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Organizer: res.Organizer,
		Redirect:  dashboardRedirect,
	})
}

// Session godoc
// @Summary Refresh the current session
// @Description Returns the session and the organizer reloaded from the database.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionSuccessResponse "data contains session and organizer"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	organizer, err := c.Service.Refresh(r.Context(), session)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "organizer no longer exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SessionResponse{Session: session, Organizer: organizer})
}

// SignOut godoc
// @Summary Sign out
// @Description Revokes the current session. The token stops working immediately.
// @Tags auth
// @Security BearerAuth
// @Success 204 "session revoked"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signout [post]
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.SignOut(r.Context(), session); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
