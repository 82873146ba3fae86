package domain

import "context"

// EmailMessage is a rendered email. Template names the source template and is used for tagging.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	Template string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// EmailTemplateRenderer renders a named template with the given data. To is left empty.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (*EmailMessage, error)
}

// OrganizerWelcomeEmailData holds data for the organizer welcome email.
type OrganizerWelcomeEmailData struct {
	Email    string
	FullName string
}

// VendorConfirmationEmailData holds data for the vendor registration confirmation.
type VendorConfirmationEmailData struct {
	Email     string
	Name      string
	KindLabel string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendOrganizerWelcome(ctx context.Context, data *OrganizerWelcomeEmailData) error
	SendVendorConfirmation(ctx context.Context, data *VendorConfirmationEmailData) error
}
