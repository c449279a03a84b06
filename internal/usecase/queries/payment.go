package queries

import (
	"context"
	"strings"

	"building-management/internal/pkg/errs"
)

type PaymentQueries interface {
	// History lists a tenant's payments, optionally narrowed to one month.
	History(ctx context.Context, email, month string) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	FindByEmail(ctx context.Context, email, month string) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) History(ctx context.Context, email, month string) ([]*PaymentView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.Wrap(errs.ErrBadRequest, "email is required")
	}

	items, err := q.readStore.FindByEmail(ctx, email, strings.TrimSpace(month))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nonNil(items), nil
}
