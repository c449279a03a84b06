package bootstrap

import (
	"context"

	"building-management/internal/infra/db"
	"building-management/internal/infra/docstore"
	"building-management/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config) (*docstore.Store, error) {
	client, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	store := docstore.NewStore(client, cfg.DB.Name, cfg.DB.OperationTimeout)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureIndexes(ctx)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}
