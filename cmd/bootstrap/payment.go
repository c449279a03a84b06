package bootstrap

import (
	"building-management/internal/infra/payment"
	"building-management/internal/pkg/config"
	"building-management/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *payment.StripeGateway {
				return payment.NewStripeGateway(cfg.Payment)
			},
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
