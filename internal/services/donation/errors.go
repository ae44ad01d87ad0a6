package donation

import (
	"errors"

	"charity/internal/repositories"
	"charity/internal/services/payment"
)

var (
	ErrGatewayUnconfigured = payment.ErrGatewayUnconfigured
	ErrGatewayOrder        = payment.ErrGatewayOrder
	ErrDonationNotFound    = repositories.ErrDonationNotFound
	ErrProjectNotFound     = repositories.ErrProjectNotFound

	ErrInvalidAmount      = errors.New("amount must be at least 0.01 with at most two decimal places")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrDonationNotPending = errors.New("donation is no longer pending")
	ErrInvalidStatus      = errors.New("invalid donation status")
	ErrEmptyUpdate        = errors.New("no updatable fields provided")
	ErrPaymentRecorded    = errors.New("donation already has a recorded payment")
)
