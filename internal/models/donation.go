package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation statuses
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
	DonationStatusRefunded  = "refunded"
)

// Donation types
const (
	DonationTypeOneTime = "one-time"
	DonationTypeMonthly = "monthly"
)

// PaymentMethodRazorpay is the only gateway donations are collected through.
const PaymentMethodRazorpay = "razorpay"

func init() {
	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Donation is one donation attempt. It is created pending together with a
// gateway order and completed once the gateway signature has been verified.
type Donation struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	TransactionID     string          `gorm:"size:40;uniqueIndex;not null" json:"transaction_id"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	DonationType      string          `gorm:"size:20;not null;default:'one-time'" json:"donation_type"`
	DonorName         string          `gorm:"size:120;not null" json:"donor_name"`
	DonorEmail        string          `gorm:"size:160;not null;index" json:"donor_email"`
	DonorPhone        *string         `gorm:"size:20" json:"donor_phone,omitempty"`
	PANNumber         *string         `gorm:"column:pan_number;size:10" json:"pan_number,omitempty"`
	IsAnonymous       bool            `gorm:"not null;default:false" json:"is_anonymous"`
	Message           *string         `gorm:"type:text" json:"message,omitempty"`
	PaymentMethod     string          `gorm:"size:20;not null;default:'razorpay'" json:"payment_method"`
	Status            string          `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RazorpayOrderID   *string         `gorm:"size:64;uniqueIndex" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string         `gorm:"size:64" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature *string         `gorm:"size:128" json:"razorpay_signature,omitempty"`
	ProjectID         *uint           `gorm:"index" json:"project_id,omitempty"`
	Project           *Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsValidDonationStatus reports whether s is one of the four donation statuses.
func IsValidDonationStatus(s string) bool {
	switch s {
	case DonationStatusPending, DonationStatusCompleted, DonationStatusFailed, DonationStatusRefunded:
		return true
	}
	return false
}

// DonationFilter narrows donation listings. A zero Limit means unlimited.
type DonationFilter struct {
	Status     string
	ProjectID  *uint
	DonorEmail string
	Limit      int
}
