package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventmatch/internal/domain"
	"eventmatch/internal/metrics"
)

var vendorKindLabels = map[domain.VendorKind]string{
	domain.VendorVenue:    "venue",
	domain.VendorCatering: "catering",
	domain.VendorTech:     "tech vendor",
}

type vendorService struct {
	vendorRepo     domain.VendorRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewVendorService creates a VendorService. emailService may be nil.
func NewVendorService(vendorRepo domain.VendorRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.VendorService {
	return &vendorService{
		vendorRepo:     vendorRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *vendorService) Schema(kind domain.VendorKind) (domain.VendorSchema, error) {
	return domain.SchemaFor(kind)
}

// Register stores a vendor whose fields were produced by VendorSchema.Normalize and
// sends a best-effort confirmation to its contact email.
func (s *vendorService) Register(ctx context.Context, v *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	schema, err := domain.SchemaFor(v.Kind)
	if err != nil {
		return err
	}
	v.CreatedAt = s.now()
	if err := s.vendorRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("failed to create %s: %w", v.Kind, err)
	}
	metrics.VendorsRegisteredTotal.WithLabelValues(string(v.Kind)).Inc()

	if s.emailService != nil {
		to, _ := v.Fields[domain.ContactEmailField].(string)
		name, _ := v.Fields[schema.NameField()].(string)
		if to != "" {
			data := &domain.VendorConfirmationEmailData{Email: to, Name: name, KindLabel: vendorKindLabels[v.Kind]}
			if err := s.emailService.SendVendorConfirmation(ctx, data); err != nil {
				s.logger.WarnContext(ctx, "vendor confirmation email failed", "kind", v.Kind, "vendor_id", v.ID, "err", err)
			}
		}
	}
	return nil
}
