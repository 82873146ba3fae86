package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventmatch/internal/domain"
	"eventmatch/internal/metrics"
)

type organizerService struct {
	organizerRepo  domain.OrganizerRepository
	sessionRepo    domain.SessionRepository
	tokenIssuer    domain.TokenIssuer
	tokenVerifier  domain.TokenVerifier
	sessionTTL     time.Duration
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewOrganizerService creates an OrganizerService. emailService may be nil.
func NewOrganizerService(
	organizerRepo domain.OrganizerRepository,
	sessionRepo domain.SessionRepository,
	tokenIssuer domain.TokenIssuer,
	tokenVerifier domain.TokenVerifier,
	sessionTTL time.Duration,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.OrganizerService {
	return &organizerService{
		organizerRepo:  organizerRepo,
		sessionRepo:    sessionRepo,
		tokenIssuer:    tokenIssuer,
		tokenVerifier:  tokenVerifier,
		sessionTTL:     sessionTTL,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *organizerService) Register(ctx context.Context, o *domain.Organizer) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o.Email = normalizeEmail(o.Email)
	o.FullName = strings.TrimSpace(o.FullName)
	if o.FullName == "" || !domain.IsEmail(o.Email) {
		return fmt.Errorf("%w: full name and a valid email are required", domain.ErrInvalidInput)
	}
	o.CreatedAt = s.now()

	if err := s.organizerRepo.Create(ctx, o); err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}

	if s.emailService != nil {
		data := &domain.OrganizerWelcomeEmailData{Email: o.Email, FullName: o.FullName}
		if err := s.emailService.SendOrganizerWelcome(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "organizer_id", o.ID, "err", err)
		}
	}
	return nil
}

// SignIn matches email exactly against the stored address. Registration stores it trimmed and lowercased.
func (s *organizerService) SignIn(ctx context.Context, email string) (*domain.SignInResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o, err := s.organizerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.SignInsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.SignInsTotal.WithLabelValues("error").Inc()
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrOrganizerLookup, err)
	}

	session := domain.NewSession(o.ID, s.now(), s.sessionTTL)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	token, err := s.tokenIssuer.Issue(o.ID, session.ID, session.ExpiresAt)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return &domain.SignInResult{Token: token, Session: session, Organizer: o}, nil
}

func (s *organizerService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	organizerID, sessionID, err := s.tokenVerifier.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionRevoked, err)
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionRevoked
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.OrganizerID != organizerID || !session.Active(s.now()) {
		return nil, domain.ErrSessionRevoked
	}
	return session, nil
}

func (s *organizerService) Refresh(ctx context.Context, session *domain.Session) (*domain.Organizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	o, err := s.organizerRepo.GetByID(ctx, session.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload organizer: %w", err)
	}
	return o, nil
}

func (s *organizerService) SignOut(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sessionRepo.Revoke(ctx, session.ID, s.now()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
