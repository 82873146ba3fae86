package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventmatch/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendOrganizerWelcome sends the "organizer_welcome" template to a newly registered organizer.
func (s *emailService) SendOrganizerWelcome(ctx context.Context, data *domain.OrganizerWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("organizer welcome data is nil")
	}
	if err := s.send(ctx, data.Email, "organizer_welcome", data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "welcome email sent", "to", data.Email)
	return nil
}

// SendVendorConfirmation sends the "vendor_confirmation" template to a vendor's contact email.
func (s *emailService) SendVendorConfirmation(ctx context.Context, data *domain.VendorConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("vendor confirmation data is nil")
	}
	if err := s.send(ctx, data.Email, "vendor_confirmation", data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "vendor confirmation sent", "to", data.Email)
	return nil
}

func (s *emailService) send(ctx context.Context, to, template string, data any) error {
	msg, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	msg.To = to
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	return nil
}
