package queries

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/pkg/errs"
)

type CouponQueries interface {
	List(ctx context.Context) ([]*CouponView, error)
	GetByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponReadStore interface {
	FindAll(ctx context.Context) ([]*CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponView, error) {
	items, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nonNil(items), nil
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	c, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c, nil
}
