package donation

import (
	"github.com/shopspring/decimal"
)

const (
	// PublicListLimit caps the public donation listing.
	PublicListLimit = 100
)

// CreateInput is the donor-supplied payload for a new donation.
type CreateInput struct {
	Amount       decimal.Decimal `json:"amount"`
	DonationType string          `json:"donation_type" validate:"omitempty,oneof=one-time monthly"`
	ProjectID    *uint           `json:"project_id"`
	DonorName    string          `json:"donor_name" validate:"required,max=255"`
	DonorEmail   string          `json:"donor_email" validate:"required,email,max=255"`
	DonorPhone   *string         `json:"donor_phone" validate:"omitempty,max=20"`
	PANNumber    *string         `json:"pan_number" validate:"omitempty,len=10"`
	IsAnonymous  bool            `json:"is_anonymous"`
	Message      *string         `json:"message" validate:"omitempty,max=2000"`
}

// VerifyInput carries the fields the checkout widget returns after payment.
type VerifyInput struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// AdminPatch lists the donation fields an admin may correct. Gateway
// identifiers and amounts are deliberately absent.
type AdminPatch struct {
	Status  *string `json:"status"`
	Message *string `json:"message"`
}
