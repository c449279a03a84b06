package request

import (
	"strings"

	"building-management/internal/usecase/commands"
)

type CreatePaymentIntentRequest struct {
	Price      float64 `json:"price" binding:"required,gt=0"`
	CouponCode string  `json:"couponCode"`
}

func (r *CreatePaymentIntentRequest) ToCommand() commands.CreatePaymentIntentRequest {
	return commands.CreatePaymentIntentRequest{Price: r.Price, CouponCode: r.CouponCode}
}

// SettlePaymentRequest accepts the settled agreement id under either
// agreementId or the web client's agreementIds key.
type SettlePaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount" binding:"min=0"`
	Month         string  `json:"month"`
	AgreementID   string  `json:"agreementId"`
	AgreementIDs  string  `json:"agreementIds"`
	TransactionID string  `json:"transactionId"`
	ApartmentNo   string  `json:"apartmentNo"`
	FloorNo       string  `json:"floorNo"`
	BlockName     string  `json:"blockName"`
	CouponCode    string  `json:"couponCode"`
}

func (r *SettlePaymentRequest) SettledAgreementID() string {
	if id := strings.TrimSpace(r.AgreementID); id != "" {
		return id
	}
	return strings.TrimSpace(r.AgreementIDs)
}

func (r *SettlePaymentRequest) ToCommand() commands.SettlePaymentRequest {
	return commands.SettlePaymentRequest{
		Email:         r.Email,
		Name:          r.Name,
		Amount:        r.Amount,
		Month:         r.Month,
		AgreementID:   r.SettledAgreementID(),
		TransactionID: r.TransactionID,
		ApartmentNo:   r.ApartmentNo,
		FloorNo:       r.FloorNo,
		BlockName:     r.BlockName,
		CouponCode:    r.CouponCode,
	}
}
