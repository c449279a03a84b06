package repository

import (
	"context"

	"building-management/internal/domain/coupon"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"

	"go.mongodb.org/mongo-driver/bson"
)

type CouponRepository struct {
	coll docstore.Collection
}

func NewCouponRepository(coll docstore.Collection) *CouponRepository {
	return &CouponRepository{coll: coll}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (string, error) {
	id, err := r.coll.InsertOne(ctx, docstore.CouponDoc{
		CouponCode:         c.Code().String(),
		DiscountPercentage: c.Discount().PercentOff(),
		CouponDescription:  c.Description(),
	})
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert coupon", err)
	}
	return id, nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	var doc docstore.CouponDoc
	if err := r.coll.FindOne(ctx, bson.M{"couponCode": code.String()}, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	c, err := toCouponDomain(doc)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon is malformed", err, infra.KindDBFailure)
	}
	return c, nil
}
