package payments

import (
	"context"
	"encoding/json"

	"wayfare/internal/pkg/config"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/shared"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrGatewayUnavailable = errs.New("payment gateway request failed")
	ErrBadSignature       = errs.New("webhook signature verification failed")
	ErrMalformedEvent     = errs.New("webhook event payload is malformed")
)

// StripeGateway talks to Stripe through the official client. One instance is
// shared by the whole process.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		api:           client.New(cfg.SecretKey, nil),
		webhookSecret: cfg.WebhookSecret,
	}
}

func toIntent(intent *stripe.PaymentIntent) *shared.PaymentIntent {
	return &shared.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p shared.CreateIntentParams) (*shared.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", p.BookingID)
	params.AddMetadata("customerId", p.CustomerID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create payment intent"), ErrGatewayUnavailable)
	}
	return toIntent(intent), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*shared.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to fetch payment intent"), ErrGatewayUnavailable)
	}
	return toIntent(intent), nil
}

// Refund refunds the full captured amount of the intent.
func (g *StripeGateway) Refund(ctx context.Context, intentID string) (*shared.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	}
	params.Context = ctx

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create refund"), ErrGatewayUnavailable)
	}
	return &shared.RefundResult{
		ID:     refund.ID,
		Amount: refund.Amount,
		Status: string(refund.Status),
	}, nil
}

func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*shared.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid webhook signature"), ErrBadSignature)
	}

	out := &shared.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	switch event.Type {
	case shared.PaymentEventSucceeded, shared.PaymentEventFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to decode payment intent event"), ErrMalformedEvent)
		}
		out.IntentID = intent.ID
		out.Amount = intent.Amount
		out.Currency = string(intent.Currency)
		out.BookingID = intent.Metadata["bookingId"]
		out.CustomerID = intent.Metadata["customerId"]
		if intent.LastPaymentError != nil {
			out.FailureMessage = intent.LastPaymentError.Msg
		}
	case shared.PaymentEventRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to decode charge event"), ErrMalformedEvent)
		}
		if charge.PaymentIntent != nil {
			out.IntentID = charge.PaymentIntent.ID
		}
		out.Amount = charge.AmountRefunded
		out.Currency = string(charge.Currency)
		out.BookingID = charge.Metadata["bookingId"]
	}

	return out, nil
}
