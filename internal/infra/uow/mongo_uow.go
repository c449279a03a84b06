package uow

import (
	"context"
	"log/slog"

	"building-management/internal/infra/docstore"
	"building-management/internal/infra/repository"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var (
	errSessionStart = errs.New("failed to start session")
	errTransaction  = errs.New("transaction failed")
)

type MongoUoW struct {
	store        *docstore.Store
	transactions bool
}

// NewMongoUoW returns a unit of work over the store. Multi-document
// transactions need a replica set; with transactions disabled the steps of
// Within run one after another without isolation.
func NewMongoUoW(store *docstore.Store, transactions bool) shared.UnitOfWork {
	return &MongoUoW{
		store:        store,
		transactions: transactions,
	}
}

func (u *MongoUoW) Repositories() shared.Tx {
	return newTx(u.store)
}

// The driver retries the callback on transient transaction errors and the
// commit on unknown commit results, so fn must be safe to run again.
func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if !u.transactions {
		return fn(ctx, newTx(u.store))
	}

	sess, err := u.store.Client().StartSession()
	if err != nil {
		return errs.Mark(err, errSessionStart)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	attempt := 0
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		attempt++
		if attempt > 1 {
			slog.Warn("retrying transaction due to transient error", "attempt", attempt)
		}
		return nil, fn(sc, newTx(u.store))
	}, txnOpts)
	if err != nil {
		if isTransactionInfraError(err) {
			return errs.Mark(err, errTransaction)
		}
		return err
	}
	return nil
}

func isTransactionInfraError(err error) bool {
	var cmdErr mongo.CommandError
	if errs.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}

type mongoTx struct {
	store *docstore.Store

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	agreementRepo    shared.AgreementRepository
	paymentRepo      shared.PaymentRepository
	announcementRepo shared.AnnouncementRepository
	couponRepo       shared.CouponRepository
}

func newTx(store *docstore.Store) *mongoTx {
	return &mongoTx{store: store}
}

func (t *mongoTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.store.Collection(docstore.Users))
	}
	return t.userRepo
}

func (t *mongoTx) Agreements() shared.AgreementRepository {
	if t.agreementRepo == nil {
		t.agreementRepo = repository.NewAgreementRepository(t.store.Collection(docstore.Agreements))
	}
	return t.agreementRepo
}

func (t *mongoTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.store.Collection(docstore.Payments))
	}
	return t.paymentRepo
}

func (t *mongoTx) Announcements() shared.AnnouncementRepository {
	if t.announcementRepo == nil {
		t.announcementRepo = repository.NewAnnouncementRepository(t.store.Collection(docstore.Announcements))
	}
	return t.announcementRepo
}

func (t *mongoTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.store.Collection(docstore.Coupons))
	}
	return t.couponRepo
}
