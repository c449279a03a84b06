package components

import (
	"building-management/internal/handler"
	"building-management/internal/handler/api"
	"building-management/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewApartmentHandler,
		api.NewAgreementHandler,
		api.NewAnnouncementHandler,
		api.NewPaymentHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
