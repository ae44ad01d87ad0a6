package donation

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/cache"
	"charity/internal/services/payment"
	"charity/internal/utils/validation"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Donation, payment.Order, error)
	VerifyPayment(ctx context.Context, input VerifyInput) (*models.Donation, error)

	// List is the public listing: completed donations unless a status is
	// given, capped at PublicListLimit.
	List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error)
	ListAdmin(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error)
	ListByEmail(ctx context.Context, email string) ([]models.Donation, error)
	Get(ctx context.Context, id uint) (*models.Donation, error)
	AdminUpdate(ctx context.Context, id uint, patch AdminPatch) (*models.Donation, error)
}

// Notifier is told about donations whose payment was just confirmed.
type Notifier interface {
	DonationCompleted(ctx context.Context, d *models.Donation) error
}

type service struct {
	donations repositories.DonationRepository
	projects  repositories.ProjectRepository
	gateway   payment.Gateway
	cache     *cache.CacheService
	notifier  Notifier
	currency  string
	now       func() time.Time
}

// NewService wires the donation service. gateway is nil when payment
// credentials are missing; cache and notifier may be nil.
func NewService(
	donations repositories.DonationRepository,
	projects repositories.ProjectRepository,
	gateway payment.Gateway,
	cache *cache.CacheService,
	notifier Notifier,
	currency string,
) Service {
	return &service{
		donations: donations,
		projects:  projects,
		gateway:   gateway,
		cache:     cache,
		notifier:  notifier,
		currency:  currency,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Donation, payment.Order, error) {
	if s.gateway == nil {
		return nil, nil, ErrGatewayUnconfigured
	}
	if err := validation.Struct(input); err != nil {
		return nil, nil, err
	}
	if !isPayableAmount(input.Amount) {
		return nil, nil, ErrInvalidAmount
	}

	if input.ProjectID != nil {
		if _, err := s.projects.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, nil, err
		}
	}

	txnID, err := NewTransactionID(s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	donationType := input.DonationType
	if donationType == "" {
		donationType = models.DonationTypeOneTime
	}
	email := strings.ToLower(strings.TrimSpace(input.DonorEmail))

	projectNote := ""
	if input.ProjectID != nil {
		projectNote = strconv.FormatUint(uint64(*input.ProjectID), 10)
	}

	order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		AmountMinor: payment.ToMinorUnits(input.Amount),
		Currency:    s.currency,
		Receipt:     txnID,
		Notes: map[string]string{
			"donor_email":   email,
			"donor_name":    input.DonorName,
			"donation_type": donationType,
			"project_id":    projectNote,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	orderID := order.ID()
	donation := &models.Donation{
		TransactionID:   txnID,
		Amount:          input.Amount,
		DonationType:    donationType,
		DonorName:       strings.TrimSpace(input.DonorName),
		DonorEmail:      email,
		DonorPhone:      input.DonorPhone,
		PANNumber:       input.PANNumber,
		IsAnonymous:     input.IsAnonymous,
		Message:         input.Message,
		PaymentMethod:   s.gateway.Name(),
		Status:          models.DonationStatusPending,
		RazorpayOrderID: &orderID,
		ProjectID:       input.ProjectID,
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		log.Printf("[donations] failed to store donation %s for order %s: %v", txnID, orderID, err)
		return nil, nil, fmt.Errorf("failed to create donation: %w", err)
	}

	log.Printf("[donations] created %s (order %s, %d %s)", txnID, orderID, order.Amount(), order.Currency())
	return donation, order, nil
}

func (s *service) VerifyPayment(ctx context.Context, input VerifyInput) (*models.Donation, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnconfigured
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		log.Printf("[donations] signature mismatch for order %s", input.OrderID)
		return nil, ErrVerificationFailed
	}

	donation, applied, err := s.donations.CompletePayment(ctx, input.OrderID, input.PaymentID, input.Signature)
	if err != nil {
		return nil, err
	}

	if !applied {
		if donation.Status != models.DonationStatusCompleted {
			return nil, ErrDonationNotPending
		}
		log.Printf("[donations] order %s already completed, not crediting again", input.OrderID)
		return donation, nil
	}

	s.invalidateTotals(ctx, donation.ProjectID)
	if s.notifier != nil {
		if err := s.notifier.DonationCompleted(ctx, donation); err != nil {
			log.Printf("[donations] notification for %s failed: %v", donation.TransactionID, err)
		}
	}
	log.Printf("[donations] completed %s (order %s, payment %s)", donation.TransactionID, input.OrderID, input.PaymentID)
	return donation, nil
}

func (s *service) List(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	if filter.Status == "" {
		filter.Status = models.DonationStatusCompleted
	}
	if !models.IsValidDonationStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	filter.DonorEmail = ""
	filter.Limit = PublicListLimit
	return s.donations.List(ctx, filter)
}

func (s *service) ListAdmin(ctx context.Context, filter models.DonationFilter) ([]models.Donation, error) {
	if filter.Status != "" && !models.IsValidDonationStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	filter.Limit = 0
	return s.donations.List(ctx, filter)
}

func (s *service) ListByEmail(ctx context.Context, email string) ([]models.Donation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return []models.Donation{}, nil
	}
	return s.donations.List(ctx, models.DonationFilter{DonorEmail: email})
}

func (s *service) Get(ctx context.Context, id uint) (*models.Donation, error) {
	return s.donations.FindByID(ctx, id)
}

func (s *service) AdminUpdate(ctx context.Context, id uint, patch AdminPatch) (*models.Donation, error) {
	fields := make(map[string]interface{}, 2)
	if patch.Status != nil {
		if !models.IsValidDonationStatus(*patch.Status) {
			return nil, ErrInvalidStatus
		}
		if *patch.Status == models.DonationStatusPending {
			current, err := s.donations.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if current.RazorpayPaymentID != nil {
				return nil, ErrPaymentRecorded
			}
		}
		fields["status"] = *patch.Status
	}
	if patch.Message != nil {
		fields["message"] = *patch.Message
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	donation, err := s.donations.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		log.Printf("[donations] admin set donation %d status to %s", id, *patch.Status)
		s.invalidateTotals(ctx, nil)
	}
	return donation, nil
}

// invalidateTotals drops cached aggregates that include amount_raised.
func (s *service) invalidateTotals(ctx context.Context, projectID *uint) {
	if s.cache == nil {
		return
	}
	if projectID != nil {
		if err := s.cache.InvalidateProject(ctx, *projectID); err != nil {
			log.Printf("Cache invalidation error for project %d: %v", *projectID, err)
		}
	}
	if err := s.cache.InvalidateDashboard(ctx); err != nil {
		log.Printf("Cache invalidation error for dashboard: %v", err)
	}
}

// isPayableAmount reports whether amount is at least one minor unit and has
// no more than two decimal places.
func isPayableAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.Equal(amount.Round(2)) &&
		payment.ToMinorUnits(amount) >= 1
}
