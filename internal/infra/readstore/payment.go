package readstore

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentReadStore struct {
	payments docstore.Collection
}

func NewPaymentReadStore(payments docstore.Collection) *PaymentReadStore {
	return &PaymentReadStore{payments: payments}
}

func (r *PaymentReadStore) FindByEmail(ctx context.Context, email, month string) ([]*queries.PaymentView, error) {
	filter := bson.M{"email": email}
	if month != "" {
		filter["month"] = month
	}

	var docs []docstore.PaymentDoc
	opts := docstore.FindOptions{Sort: bson.D{{Key: "date", Value: -1}}}
	if err := r.payments.FindMany(ctx, filter, &docs, opts); err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	views, err := toViews[queries.PaymentView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map payments", err, infra.KindDBFailure)
	}
	return views, nil
}
