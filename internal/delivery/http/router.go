package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventmatch/internal/delivery/http/controllers"
	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/delivery/http/middleware"
)

// RouterConfig holds the cross-cutting settings of the HTTP surface.
type RouterConfig struct {
	AllowedOrigins  []string
	SignInRateLimit int
	SignInWindow    time.Duration
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Organizer *controllers.OrganizerController
	Auth      *controllers.AuthController
	Event     *controllers.EventController
	Vendor    *controllers.VendorController
	Health    *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
// and wraps it with request id, logging and CORS middleware.
func NewRouter(c Controllers, authenticator middleware.Authenticator, cfg RouterConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(authenticator, logger)

	signInLimit := cfg.SignInRateLimit
	if signInLimit <= 0 {
		signInLimit = 10
	}
	signInWindow := cfg.SignInWindow
	if signInWindow <= 0 {
		signInWindow = time.Minute
	}
	limitSignIn := httprate.Limit(
		signInLimit,
		signInWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			helpers.WriteJSONError(w, http.StatusTooManyRequests, helpers.ErrCodeTooManyRequests, "too many sign-in attempts, try again later")
		}),
	)

	// Organizers and sessions
	mux.HandleFunc("POST /organizers", c.Organizer.Register)
	mux.Handle("POST /auth/signin", limitSignIn(http.HandlerFunc(c.Auth.SignIn)))
	mux.HandleFunc("GET /auth/session", requireSession(c.Auth.Session))
	mux.HandleFunc("POST /auth/signout", requireSession(c.Auth.SignOut))

	// Events
	mux.HandleFunc("GET /dashboard", requireSession(c.Event.Dashboard))
	mux.HandleFunc("POST /events", requireSession(c.Event.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}/notification", requireSession(c.Event.NotificationStatus))

	// Vendors
	mux.HandleFunc("GET /vendors/{kind}/schema", c.Vendor.Schema)
	mux.HandleFunc("POST /vendors/{kind}", c.Vendor.Register)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux)))
}
