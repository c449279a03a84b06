package repository

import (
	"context"

	"building-management/internal/domain/payment"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentRepository struct {
	coll docstore.Collection
}

func NewPaymentRepository(coll docstore.Collection) *PaymentRepository {
	return &PaymentRepository{coll: coll}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (string, error) {
	apt := p.Apartment()
	doc := docstore.PaymentDoc{
		Email:         p.Email().Value(),
		Name:          p.Name(),
		Amount:        p.Amount(),
		Month:         p.Month(),
		AgreementID:   p.AgreementID(),
		TransactionID: p.TransactionID(),
		ApartmentNo:   apt.ApartmentNo,
		FloorNo:       apt.FloorNo,
		BlockName:     apt.BlockName,
		CouponCode:    p.CouponCode(),
		Date:          p.Date(),
	}

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert payment", err)
	}
	return id, nil
}

func (r *PaymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	n, err := r.coll.Count(ctx, bson.M{"transactionId": transactionID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up payment by transaction", err)
	}
	return n > 0, nil
}
