package readstore

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type CouponReadStore struct {
	coupons docstore.Collection
}

func NewCouponReadStore(coupons docstore.Collection) *CouponReadStore {
	return &CouponReadStore{coupons: coupons}
}

func (r *CouponReadStore) FindAll(ctx context.Context) ([]*queries.CouponView, error) {
	var docs []docstore.CouponDoc
	if err := r.coupons.FindMany(ctx, bson.M{}, &docs, docstore.FindOptions{}); err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	views, err := toViews[queries.CouponView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map coupons", err, infra.KindDBFailure)
	}
	return views, nil
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	var doc docstore.CouponDoc
	if err := r.coupons.FindOne(ctx, bson.M{"couponCode": code}, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	view, err := toView[queries.CouponView](&doc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map coupon", err, infra.KindDBFailure)
	}
	return view, nil
}
