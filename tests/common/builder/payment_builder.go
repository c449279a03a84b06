//go:build unit || e2e

package builder

import (
	reqdto "building-management/internal/handler/dto/request"
)

type PaymentBuilder struct {
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

func NewPaymentBuilder(agreementID string) *PaymentBuilder {
	return &PaymentBuilder{
		Email:         "test@example.com",
		Name:          "Test User",
		Amount:        1200,
		Month:         "March",
		AgreementID:   agreementID,
		TransactionID: "pi_test_123",
		ApartmentNo:   "A-101",
		FloorNo:       "1",
		BlockName:     "A",
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDTO() reqdto.SettlePaymentRequest {
	return reqdto.SettlePaymentRequest{
		Email:         p.Email,
		Name:          p.Name,
		Amount:        p.Amount,
		Month:         p.Month,
		AgreementID:   p.AgreementID,
		TransactionID: p.TransactionID,
		ApartmentNo:   p.ApartmentNo,
		FloorNo:       p.FloorNo,
		BlockName:     p.BlockName,
		CouponCode:    p.CouponCode,
	}
}

// BuildLegacyBody uses the web client's agreementIds key.
func (p *PaymentBuilder) BuildLegacyBody() map[string]any {
	return map[string]any{
		"email":         p.Email,
		"name":          p.Name,
		"amount":        p.Amount,
		"month":         p.Month,
		"agreementIds":  p.AgreementID,
		"transactionId": p.TransactionID,
		"apartmentNo":   p.ApartmentNo,
		"floorNo":       p.FloorNo,
		"blockName":     p.BlockName,
	}
}
