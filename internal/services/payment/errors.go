package payment

import (
	"errors"
	"fmt"
)

var (
	ErrGatewayUnconfigured = errors.New("payment gateway not configured")
	ErrGatewayOrder        = errors.New("failed to create payment order")
)

// GatewayOrderError carries the provider's own description of why order
// creation was rejected.
type GatewayOrderError struct {
	Description string
	Err         error
}

func (e *GatewayOrderError) Error() string {
	if e.Description == "" {
		return ErrGatewayOrder.Error()
	}
	return fmt.Sprintf("%s: %s", ErrGatewayOrder.Error(), e.Description)
}

func (e *GatewayOrderError) Unwrap() error {
	return ErrGatewayOrder
}
