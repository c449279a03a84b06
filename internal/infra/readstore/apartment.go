package readstore

import (
	"context"

	"building-management/internal/domain/agreement"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type ApartmentReadStore struct {
	apartments docstore.Collection
	agreements docstore.Collection
}

func NewApartmentReadStore(apartments, agreements docstore.Collection) *ApartmentReadStore {
	return &ApartmentReadStore{apartments: apartments, agreements: agreements}
}

func (r *ApartmentReadStore) FindAll(ctx context.Context) ([]*queries.ApartmentView, error) {
	var docs []docstore.ApartmentDoc
	if err := r.apartments.FindMany(ctx, bson.M{}, &docs, docstore.FindOptions{}); err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}
	views, err := toViews[queries.ApartmentView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map apartments", err, infra.KindDBFailure)
	}
	return views, nil
}

func (r *ApartmentReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.apartments.Count(ctx, bson.M{})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count apartments", err)
	}
	return n, nil
}

func (r *ApartmentReadStore) RentedApartmentIDs(ctx context.Context) ([]string, error) {
	values, err := r.agreements.Distinct(ctx, "apartmentId", bson.M{"status": agreement.StatusAccepted.String()})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rented apartments", err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
