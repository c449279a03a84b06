package queries

import "time"

// Read models (DTO for read side)
type UserView struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Role      string `json:"role"`
	Timestamp int64  `json:"timestamp"`
}

type ApartmentView struct {
	ID          string  `json:"_id"`
	ApartmentNo string  `json:"apartmentNo"`
	FloorNo     string  `json:"floorNo"`
	BlockName   string  `json:"blockName"`
	Rent        float64 `json:"rent"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

type AgreementView struct {
	ID           string     `json:"_id"`
	UserName     string     `json:"userName"`
	UserEmail    string     `json:"userEmail"`
	ApartmentID  string     `json:"apartmentId"`
	ApartmentNo  string     `json:"apartmentNo"`
	FloorNo      string     `json:"floorNo"`
	BlockName    string     `json:"blockName"`
	Rent         float64    `json:"rent"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	AcceptedDate *time.Time `json:"acceptedDate"`
	RejectedDate *time.Time `json:"rejectedDate"`
}

type AnnouncementView struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaymentView struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	Month         string    `json:"month"`
	AgreementID   string    `json:"agreementId"`
	TransactionID string    `json:"transactionId,omitempty"`
	ApartmentNo   string    `json:"apartmentNo"`
	FloorNo       string    `json:"floorNo"`
	BlockName     string    `json:"blockName"`
	CouponCode    string    `json:"couponCode,omitempty"`
	Date          time.Time `json:"date"`
}

type CouponView struct {
	ID                 string  `json:"_id"`
	CouponCode         string  `json:"couponCode"`
	DiscountPercentage float64 `json:"discountPercentage"`
	CouponDescription  string  `json:"couponDescription"`
}
