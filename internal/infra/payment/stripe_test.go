//go:build unit

package payment

import (
	"context"
	"testing"

	"building-management/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type mockIntentClient struct {
	mock.Mock
}

func (m *mockIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	intent, _ := args.Get(0).(*stripe.PaymentIntent)
	return intent, args.Error(1)
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	t.Run("returns client secret", func(t *testing.T) {
		client := new(mockIntentClient)
		client.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
			return *p.Amount == 120000 &&
				*p.Currency == "usd" &&
				len(p.PaymentMethodTypes) == 1 && *p.PaymentMethodTypes[0] == "card" &&
				p.IdempotencyKey == nil
		})).Return(&stripe.PaymentIntent{ClientSecret: "pi_1_secret_abc"}, nil)

		secret, err := newStripeGateway(client, "").CreateIntent(context.Background(), 120000, "")
		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret_abc", secret)
		client.AssertExpectations(t)
	})

	t.Run("same client key is sent as the same stripe key", func(t *testing.T) {
		key := "5b0c1f0e-3a8e-4c55-9d9f-0d6f4e6a2b11"
		var sent []string

		client := new(mockIntentClient)
		client.On("New", mock.Anything).Run(func(args mock.Arguments) {
			p := args.Get(0).(*stripe.PaymentIntentParams)
			require.NotNil(t, p.IdempotencyKey)
			sent = append(sent, *p.IdempotencyKey)
		}).Return(&stripe.PaymentIntent{ClientSecret: "pi_2_secret"}, nil).Twice()

		gateway := newStripeGateway(client, "usd")
		for range 2 {
			_, err := gateway.CreateIntent(context.Background(), 5000, key)
			require.NoError(t, err)
		}

		require.Len(t, sent, 2)
		assert.Equal(t, "payment-intent-"+key, sent[0])
		assert.Equal(t, sent[0], sent[1])
	})

	t.Run("provider failure", func(t *testing.T) {
		client := new(mockIntentClient)
		client.On("New", mock.Anything).Return(nil, &stripe.Error{Msg: "card declined"})

		_, err := newStripeGateway(client, "usd").CreateIntent(context.Background(), 100, "")
		assert.True(t, errs.Is(err, errs.ErrProvider))
	})

	t.Run("missing client secret", func(t *testing.T) {
		client := new(mockIntentClient)
		client.On("New", mock.Anything).Return(&stripe.PaymentIntent{}, nil)

		_, err := newStripeGateway(client, "usd").CreateIntent(context.Background(), 100, "")
		assert.True(t, errs.Is(err, errs.ErrProvider))
	})
}
