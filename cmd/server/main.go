// @title EventMatch API
// @version 1.0
// @description Organizer accounts, event requests and vendor registration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventmatch/config"
	_ "eventmatch/docs"
	"eventmatch/internal/adapters/auth"
	"eventmatch/internal/adapters/email"
	"eventmatch/internal/adapters/webhook"
	httpdelivery "eventmatch/internal/delivery/http"
	"eventmatch/internal/delivery/http/controllers"
	"eventmatch/internal/domain"
	"eventmatch/internal/repository/postgres"
	"eventmatch/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := db.PingContext(ctx)
		cancel()
		if err != nil {
			logger.Error("db ping failed", "err", err)
			os.Exit(1)
		}
	}

	// Repositories
	organizerRepo := postgres.NewOrganizerRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	deliveryRepo := postgres.NewWebhookDeliveryRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	var notifier domain.Notifier
	if cfg.Webhook.URL != "" {
		notifier = webhook.NewHTTPNotifier(&http.Client{Timeout: cfg.Webhook.Timeout}, cfg.Webhook.URL)
	} else {
		logger.Warn("WEBHOOK_URL empty: event notifications are recorded but not sent")
		notifier = webhook.NewNoopNotifier(logger)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	notificationService := services.NewNotificationService(deliveryRepo, notifier, logger, services.NotificationConfig{
		MaxAttempts:  cfg.Webhook.MaxAttempts,
		PollInterval: cfg.Webhook.PollInterval,
		SendTimeout:  cfg.Webhook.Timeout,
	})
	organizerService := services.NewOrganizerService(
		organizerRepo,
		sessionRepo,
		auth.NewJWTIssuer(cfg.JWTSecret),
		auth.NewJWTVerifier(cfg.JWTSecret),
		cfg.SessionTTL,
		emailService,
		logger,
		cfg.RequestTimeout,
	)
	eventService := services.NewEventService(eventRepo, organizerRepo, deliveryRepo, notificationService, logger, cfg.RequestTimeout)
	vendorService := services.NewVendorService(vendorRepo, emailService, logger, cfg.RequestTimeout)

	// HTTP
	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Organizer: controllers.NewOrganizerController(logger, organizerService),
		Auth:      controllers.NewAuthController(logger, organizerService),
		Event:     controllers.NewEventController(logger, eventService),
		Vendor:    controllers.NewVendorController(logger, vendorService),
		Health:    controllers.NewHealthController(logger, db),
	}, organizerService, httpdelivery.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins,
		SignInRateLimit: cfg.SignInRateLimit,
		SignInWindow:    cfg.SignInWindow,
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		notificationService.Run(ctx)
	}()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	<-dispatcherDone
	logger.Info("stopped")
}
