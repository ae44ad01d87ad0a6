/*
Package donation implements the donation lifecycle: creating a pending
donation together with a gateway order, and completing it once the gateway's
checkout callback has been verified.

Usage:

	svc := donation.NewService(donations, projects, gateway, cache, notifier, "INR")

	// Start a donation; the order is handed to the checkout widget.
	d, order, err := svc.Create(ctx, donation.CreateInput{...})

	// Complete it with the fields the widget returns.
	d, err = svc.VerifyPayment(ctx, donation.VerifyInput{...})

Verification is idempotent. The status update and the project credit run in
one database transaction guarded by status = 'pending', so replaying the same
callback returns the completed donation without crediting the project again.

Error Handling:
- ErrGatewayUnconfigured: gateway credentials were not provided at startup
- payment.GatewayOrderError: the gateway rejected order creation
- ErrVerificationFailed: signature mismatch, the donation stays pending
- ErrDonationNotFound: no donation for the id or order id
- ErrDonationNotPending: the donation was failed or refunded before verification
*/
package donation
