package queries

import (
	"context"

	"building-management/internal/pkg/errs"
)

type ApartmentQueries interface {
	List(ctx context.Context) ([]*ApartmentView, error)
	Count(ctx context.Context) (int64, error)
}

type ApartmentReadStore interface {
	FindAll(ctx context.Context) ([]*ApartmentView, error)
	Count(ctx context.Context) (int64, error)
	// RentedApartmentIDs lists apartments referenced by accepted agreements.
	RentedApartmentIDs(ctx context.Context) ([]string, error)
}

type apartmentQueriesImpl struct {
	readStore ApartmentReadStore
}

func NewApartmentQueries(readStore ApartmentReadStore) ApartmentQueries {
	return &apartmentQueriesImpl{readStore: readStore}
}

func (q *apartmentQueriesImpl) List(ctx context.Context) ([]*ApartmentView, error) {
	apartments, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rented, err := q.readStore.RentedApartmentIDs(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	taken := make(map[string]struct{}, len(rented))
	for _, id := range rented {
		taken[id] = struct{}{}
	}

	for _, a := range apartments {
		_, isTaken := taken[a.ID]
		a.Available = !isTaken
	}
	return nonNil(apartments), nil
}

func (q *apartmentQueriesImpl) Count(ctx context.Context) (int64, error) {
	n, err := q.readStore.Count(ctx)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return n, nil
}
