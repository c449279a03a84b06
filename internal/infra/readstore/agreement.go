package readstore

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type AgreementReadStore struct {
	agreements docstore.Collection
}

func NewAgreementReadStore(agreements docstore.Collection) *AgreementReadStore {
	return &AgreementReadStore{agreements: agreements}
}

func (r *AgreementReadStore) FindAll(ctx context.Context) ([]*queries.AgreementView, error) {
	var docs []docstore.AgreementDoc
	opts := docstore.FindOptions{Sort: bson.D{{Key: "createdAt", Value: -1}}}
	if err := r.agreements.FindMany(ctx, bson.M{}, &docs, opts); err != nil {
		return nil, infra.WrapRepoErr("failed to list agreements", err)
	}
	views, err := toViews[queries.AgreementView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map agreements", err, infra.KindDBFailure)
	}
	return views, nil
}

func (r *AgreementReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	n, err := r.agreements.Count(ctx, bson.M{"status": status})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count agreements", err)
	}
	return n, nil
}
