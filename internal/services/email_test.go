package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmatch/internal/domain"
)

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	sent []*domain.EmailMessage
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	rendered []string
	err      error
}

func (f *fakeRenderer) Render(templateName string, data any) (*domain.EmailMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rendered = append(f.rendered, templateName)
	return &domain.EmailMessage{
		Subject:  "subject:" + templateName,
		HTMLBody: "<p>" + templateName + "</p>",
		TextBody: templateName,
		Template: templateName,
	}, nil
}

func TestEmailService(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		send         func(s domain.EmailService) error
		mailerErr    error
		renderErr    error
		wantTemplate string
		wantTo       string
		wantErr      bool
	}{
		{
			name: "organizer welcome",
			send: func(s domain.EmailService) error {
				return s.SendOrganizerWelcome(ctx, &domain.OrganizerWelcomeEmailData{Email: "ada@example.com", FullName: "Ada"})
			},
			wantTemplate: "organizer_welcome",
			wantTo:       "ada@example.com",
		},
		{
			name: "vendor confirmation",
			send: func(s domain.EmailService) error {
				return s.SendVendorConfirmation(ctx, &domain.VendorConfirmationEmailData{Email: "loft@example.com", Name: "The Loft", KindLabel: "venue"})
			},
			wantTemplate: "vendor_confirmation",
			wantTo:       "loft@example.com",
		},
		{
			name:    "nil welcome data",
			send:    func(s domain.EmailService) error { return s.SendOrganizerWelcome(ctx, nil) },
			wantErr: true,
		},
		{
			name:    "nil vendor data",
			send:    func(s domain.EmailService) error { return s.SendVendorConfirmation(ctx, nil) },
			wantErr: true,
		},
		{
			name: "render failure",
			send: func(s domain.EmailService) error {
				return s.SendOrganizerWelcome(ctx, &domain.OrganizerWelcomeEmailData{Email: "ada@example.com"})
			},
			renderErr: errors.New("template missing"),
			wantErr:   true,
		},
		{
			name: "mailer failure",
			send: func(s domain.EmailService) error {
				return s.SendVendorConfirmation(ctx, &domain.VendorConfirmationEmailData{Email: "loft@example.com"})
			},
			mailerErr: errors.New("ses rejected"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.mailerErr}
			renderer := &fakeRenderer{err: tt.renderErr}
			svc := NewEmailService(mailer, renderer, testLogger())

			err := tt.send(svc)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, mailer.sent)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{tt.wantTemplate}, renderer.rendered)
			require.Len(t, mailer.sent, 1)
			assert.Equal(t, tt.wantTo, mailer.sent[0].To)
			assert.Equal(t, "subject:"+tt.wantTemplate, mailer.sent[0].Subject)
			assert.Equal(t, tt.wantTemplate, mailer.sent[0].Template)
		})
	}
}
