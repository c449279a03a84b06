package components

import (
	"building-management/internal/infra/docstore"
	"building-management/internal/infra/readstore"
	"building-management/internal/infra/uow"
	"building-management/internal/pkg/config"
	"building-management/internal/usecase/queries"
	"building-management/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			NewApartmentReadStore,
			fx.As(new(queries.ApartmentReadStore)),
		),
		fx.Annotate(
			NewAgreementReadStore,
			fx.As(new(queries.AgreementReadStore)),
		),
		fx.Annotate(
			NewAnnouncementReadStore,
			fx.As(new(queries.AnnouncementReadStore)),
		),
		fx.Annotate(
			NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

// Repositories are built per unit of work, so only the UoW is provided.
func NewUnitOfWork(store *docstore.Store, cfg config.Config) shared.UnitOfWork {
	return uow.NewMongoUoW(store, cfg.DB.Transactions)
}

func NewUserReadStore(store *docstore.Store) *readstore.UserReadStore {
	return readstore.NewUserReadStore(store.Collection(docstore.Users))
}

func NewApartmentReadStore(store *docstore.Store) *readstore.ApartmentReadStore {
	return readstore.NewApartmentReadStore(store.Collection(docstore.Apartments), store.Collection(docstore.Agreements))
}

func NewAgreementReadStore(store *docstore.Store) *readstore.AgreementReadStore {
	return readstore.NewAgreementReadStore(store.Collection(docstore.Agreements))
}

func NewAnnouncementReadStore(store *docstore.Store) *readstore.AnnouncementReadStore {
	return readstore.NewAnnouncementReadStore(store.Collection(docstore.Announcements))
}

func NewPaymentReadStore(store *docstore.Store) *readstore.PaymentReadStore {
	return readstore.NewPaymentReadStore(store.Collection(docstore.Payments))
}

func NewCouponReadStore(store *docstore.Store) *readstore.CouponReadStore {
	return readstore.NewCouponReadStore(store.Collection(docstore.Coupons))
}
