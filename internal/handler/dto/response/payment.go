package response

import "building-management/internal/usecase/commands"

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type SettlePaymentResponse struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

func FromSettleResult(r *commands.SettlePaymentResult) SettlePaymentResponse {
	return SettlePaymentResponse{
		PaymentResult: InsertResult{InsertedID: r.PaymentID},
		DeleteResult:  DeleteResult{DeletedCount: r.DeletedCount},
	}
}
