package commands

import (
	"context"

	"building-management/internal/domain/coupon"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/shared"
)

type CreateCouponRequest struct {
	CouponCode         string
	DiscountPercentage float64
	CouponDescription  string
}

type CouponCommands interface {
	Create(ctx context.Context, req CreateCouponRequest) (string, error)
}

type couponCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCouponCommands(uow shared.UnitOfWork) CouponCommands {
	return &couponCommandsImpl{uow: uow}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, req CreateCouponRequest) (string, error) {
	c, err := coupon.NewCoupon(req.CouponCode, req.DiscountPercentage, req.CouponDescription)
	if err != nil {
		return "", badRequest(err)
	}

	id, err := uc.uow.Repositories().Coupons().Create(ctx, c)
	if err != nil {
		return "", mapRepoErr(err, errs.ErrCouponNotFound)
	}
	return id, nil
}
