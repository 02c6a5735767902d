package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// TravelBackend is the external travel backend used by the wizard.
// Implementations must be safe for concurrent use.
type TravelBackend interface {
	// CreatePaymentIntent opens a payment for the given amount and returns
	// the client secret used to confirm it.
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)

	// BookFlight creates the booking after a successful payment.
	BookFlight(ctx context.Context, req BookingRequest, creds Credentials) (*BookingConfirmation, error)
}

// PaymentWidget confirms card payments with the payment provider.
type PaymentWidget interface {
	// Ready reports whether the widget client is configured and usable.
	Ready() bool

	// ConfirmCardPayment confirms the payment identified by clientSecret
	// with the given card. Provider-reported failures are *PaymentError.
	ConfirmCardPayment(ctx context.Context, clientSecret string, card Card) (*PaymentConfirmation, error)
}

// ReceiptRenderer renders the receipt document of a confirmed booking.
type ReceiptRenderer interface {
	// Render returns the encoded document.
	Render(receipt Receipt) ([]byte, error)

	// ContentType is the media type of rendered documents.
	ContentType() string
}
