package payment

import (
	"context"
)

// Gateway is the payment provider the donation flow talks to. A single
// instance is built at startup from configuration and injected.
type Gateway interface {
	// Name is stored as the donation's payment_method.
	Name() string

	// CreateOrder registers an order the client-side checkout widget can pay.
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)

	// VerifySignature checks the signature the gateway returned to the
	// client after a successful payment.
	VerifySignature(orderID, paymentID, signature string) bool
}

// OrderRequest describes an order in minor currency units (paise for INR).
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// Order is the raw order object returned by the gateway. It is handed back
// to the client untouched so the checkout widget gets id, amount and currency.
type Order map[string]interface{}

// ID returns the gateway order id.
func (o Order) ID() string {
	id, _ := o["id"].(string)
	return id
}

// Amount returns the order amount in minor units.
func (o Order) Amount() int64 {
	switch v := o["amount"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func (o Order) Currency() string {
	c, _ := o["currency"].(string)
	return c
}
