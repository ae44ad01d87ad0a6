package notification

import (
	"context"
	"log"

	"charity/internal/models"
)

// Service is a minimal notification service implementation. It logs the
// messages a mail provider would send.
type Service struct{}

// NewService creates a new notification service.
func NewService() *Service { return &Service{} }

// DonationCompleted logs the thank-you note for a confirmed donation.
func (s *Service) DonationCompleted(ctx context.Context, d *models.Donation) error {
	name := d.DonorName
	if d.IsAnonymous {
		name = "anonymous donor"
	}
	log.Printf("Notify %s <%s>: thank you for donation %s of %s", name, d.DonorEmail, d.TransactionID, d.Amount.StringFixed(2))
	return nil
}
