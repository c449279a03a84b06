package queries

import (
	"context"

	"building-management/internal/domain/agreement"
	"building-management/internal/pkg/errs"
)

type AgreementQueries interface {
	List(ctx context.Context) ([]*AgreementView, error)
	// CountUnavailable counts accepted agreements, i.e. rented rooms.
	CountUnavailable(ctx context.Context) (int64, error)
}

type AgreementReadStore interface {
	FindAll(ctx context.Context) ([]*AgreementView, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type agreementQueriesImpl struct {
	readStore AgreementReadStore
}

func NewAgreementQueries(readStore AgreementReadStore) AgreementQueries {
	return &agreementQueriesImpl{readStore: readStore}
}

func (q *agreementQueriesImpl) List(ctx context.Context) ([]*AgreementView, error) {
	agreements, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nonNil(agreements), nil
}

func (q *agreementQueriesImpl) CountUnavailable(ctx context.Context) (int64, error) {
	n, err := q.readStore.CountByStatus(ctx, agreement.StatusAccepted.String())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return n, nil
}
