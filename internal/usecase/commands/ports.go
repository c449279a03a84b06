package commands

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/pkg/errs"
)

// PaymentGateway creates card payment intents with the payment provider.
// Calls repeating a non-empty idempotency key return the intent created by
// the first one.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, idempotencyKey string) (clientSecret string, err error)
}

// Metrics is the subset of the metrics recorder the write side reports to.
type Metrics interface {
	RecordAgreementTransition(status string)
	RecordPaymentSettled()
	RecordPaymentIntent(success bool)
}

// mapRepoErr translates repository failures into the service error taxonomy.
func mapRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindInvalidID):
		return errs.Mark(err, errs.ErrInvalidID)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicate)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func badRequest(err error) error {
	return errs.Mark(err, errs.ErrBadRequest)
}
