package payment

import (
	"context"
	"log/slog"

	"building-management/internal/pkg/config"
	"building-management/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type intentClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates card payment intents with Stripe.
type StripeGateway struct {
	intents  intentClient
	currency string
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	return newStripeGateway(sc.PaymentIntents, cfg.Currency)
}

func newStripeGateway(intents intentClient, currency string) *StripeGateway {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeGateway{intents: intents, currency: currency}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, idempotencyKey string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	// Stripe replays the first response for a repeated key.
	if idempotencyKey != "" {
		params.SetIdempotencyKey("payment-intent-" + idempotencyKey)
	}

	intent, err := g.intents.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "payment intent creation failed", "amount_cents", amountCents, "error", err.Error())
		return "", errs.Mark(errs.Wrap(err, "create payment intent"), errs.ErrProvider)
	}
	if intent == nil || intent.ClientSecret == "" {
		return "", errs.Wrap(errs.ErrProvider, "payment intent has no client secret")
	}
	return intent.ClientSecret, nil
}
