package commands

import (
	"context"
	"strings"

	"building-management/internal/domain/coupon"
	"building-management/internal/domain/payment"
	"building-management/internal/domain/user"
	"building-management/internal/infra/docstore"
	"building-management/internal/pkg/clock"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/shared"
)

var ErrNothingToCharge = errs.New("discounted amount leaves nothing to charge")

type CreatePaymentIntentRequest struct {
	Price      float64
	CouponCode string
	// IdempotencyKey is the client's Idempotency-Key header, if any.
	IdempotencyKey string
}

type SettlePaymentRequest struct {
	Email         string
	Name          string
	Amount        float64
	Month         string
	AgreementID   string
	TransactionID string
	ApartmentNo   string
	FloorNo       string
	BlockName     string
	CouponCode    string
}

type SettlePaymentResult struct {
	PaymentID    string
	DeletedCount int64
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, req CreatePaymentIntentRequest) (string, error)
	// Settle records the payment and removes the accepted agreement it pays
	// for, or does neither.
	Settle(ctx context.Context, req SettlePaymentRequest) (*SettlePaymentResult, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	metrics Metrics
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, metrics Metrics) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		metrics: metrics,
	}
}

func (uc *paymentCommandsImpl) CreateIntent(ctx context.Context, req CreatePaymentIntentRequest) (string, error) {
	cents, err := payment.AmountCents(req.Price)
	if err != nil {
		return "", badRequest(err)
	}

	if code := strings.TrimSpace(req.CouponCode); code != "" {
		cents, err = uc.applyCoupon(ctx, code, cents)
		if err != nil {
			return "", err
		}
	}

	secret, err := uc.gateway.CreateIntent(ctx, cents, req.IdempotencyKey)
	uc.metrics.RecordPaymentIntent(err == nil)
	if err != nil {
		return "", errs.Mark(err, errs.ErrProvider)
	}
	return secret, nil
}

func (uc *paymentCommandsImpl) applyCoupon(ctx context.Context, code string, cents int64) (int64, error) {
	couponCode, err := coupon.NewCouponCode(code)
	if err != nil {
		return 0, badRequest(err)
	}

	c, err := uc.uow.Repositories().Coupons().FindByCode(ctx, couponCode)
	if err != nil {
		return 0, mapRepoErr(err, errs.ErrCouponNotFound)
	}

	discounted := c.ApplyDiscount(cents)
	if discounted <= 0 {
		return 0, badRequest(ErrNothingToCharge)
	}
	return discounted, nil
}

func (uc *paymentCommandsImpl) Settle(ctx context.Context, req SettlePaymentRequest) (*SettlePaymentResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, badRequest(err)
	}
	if _, err := docstore.ParseID(req.AgreementID); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidID)
	}

	p, err := payment.NewPayment(payment.Params{
		Email:         email,
		Name:          req.Name,
		Amount:        req.Amount,
		Month:         req.Month,
		AgreementID:   req.AgreementID,
		TransactionID: req.TransactionID,
		Apartment: payment.Apartment{
			ApartmentNo: req.ApartmentNo,
			FloorNo:     req.FloorNo,
			BlockName:   req.BlockName,
		},
		CouponCode: req.CouponCode,
	}, uc.clock.Now())
	if err != nil {
		return nil, badRequest(err)
	}

	result := &SettlePaymentResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Without transactions a failed insert cannot restore the deleted
		// agreement, so a known transaction is refused before the delete.
		if txID := p.TransactionID(); txID != "" {
			seen, derr := tx.Payments().ExistsByTransactionID(ctx, txID)
			if derr != nil {
				return mapRepoErr(derr, errs.ErrNotFound)
			}
			if seen {
				return errs.Wrap(errs.ErrDuplicate, "transaction already settled")
			}
		}

		deleted, derr := tx.Agreements().DeleteSettleable(ctx, p.AgreementID())
		if derr != nil {
			return mapRepoErr(derr, errs.ErrAgreementNotFound)
		}
		if deleted == 0 {
			return errs.ErrAgreementNotSettleable
		}

		id, derr := tx.Payments().Create(ctx, p)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrNotFound)
		}

		result.PaymentID = id
		result.DeletedCount = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordPaymentSettled()
	return result, nil
}
