package payment

import (
	"context"
	"log"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

const gatewayRazorpay = "razorpay"

// orderCreator is the slice of the razorpay SDK the adapter uses.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Razorpay is the Gateway backed by the razorpay-go SDK.
type Razorpay struct {
	orders orderCreator
	secret string
}

// NewRazorpay builds the gateway client. It returns ErrGatewayUnconfigured
// when either credential is missing so callers can run without payments.
func NewRazorpay(keyID, keySecret string) (*Razorpay, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrGatewayUnconfigured
	}
	client := razorpay.NewClient(keyID, keySecret)
	return &Razorpay{orders: client.Order, secret: keySecret}, nil
}

func (r *Razorpay) Name() string {
	return gatewayRazorpay
}

// CreateOrder registers the order with Razorpay. The SDK has no context
// support, so ctx only bounds the caller.
func (r *Razorpay) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	body, err := r.orders.Create(map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		log.Printf("[payment] razorpay order creation failed for receipt %s: %v", req.Receipt, err)
		return nil, &GatewayOrderError{Description: strings.TrimSpace(err.Error()), Err: err}
	}

	order := Order(body)
	if order.ID() == "" {
		return nil, &GatewayOrderError{Description: "gateway returned an order without an id"}
	}
	return order, nil
}

func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(r.secret, orderID, paymentID, signature)
}

// ToMinorUnits converts a major-unit amount to the integer minor units the
// gateway expects, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
