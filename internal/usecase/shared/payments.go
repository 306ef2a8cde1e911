package shared

import "context"

// Provider-neutral event types the webhook pipeline reacts to. Values mirror
// the Stripe event names so logs stay greppable against the dashboard.
const (
	PaymentEventSucceeded = "payment_intent.succeeded"
	PaymentEventFailed    = "payment_intent.payment_failed"
	PaymentEventRefunded  = "charge.refunded"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

type RefundResult struct {
	ID     string
	Amount int64
	Status string
}

// PaymentEvent is a verified provider event, reduced to the fields the
// reconciliation logic uses.
type PaymentEvent struct {
	ID             string
	Type           string
	IntentID       string
	BookingID      string
	CustomerID     string
	Amount         int64
	Currency       string
	FailureMessage string
}

type CreateIntentParams struct {
	BookingID   string
	CustomerID  string
	AmountCents int64
	Currency    string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, p CreateIntentParams) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
	Refund(ctx context.Context, intentID string) (*RefundResult, error)
	// VerifyEvent authenticates a raw webhook payload against its signature
	// header and decodes it.
	VerifyEvent(payload []byte, signature string) (*PaymentEvent, error)
}
