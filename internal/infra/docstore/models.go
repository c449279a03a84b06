package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes of the service collections. Field names are camelCase to
// match the records written by the web client.

type UserDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Photo     string             `bson:"photo"`
	Role      string             `bson:"role"`
	Timestamp int64              `bson:"timestamp"`
}

type ApartmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentNo string             `bson:"apartmentNo"`
	FloorNo     string             `bson:"floorNo"`
	BlockName   string             `bson:"blockName"`
	Rent        float64            `bson:"rent"`
	Image       string             `bson:"image"`
}

type AgreementDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserName     string             `bson:"userName"`
	UserEmail    string             `bson:"userEmail"`
	ApartmentID  string             `bson:"apartmentId"`
	ApartmentNo  string             `bson:"apartmentNo"`
	FloorNo      string             `bson:"floorNo"`
	BlockName    string             `bson:"blockName"`
	Rent         float64            `bson:"rent"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
	AcceptedDate *time.Time         `bson:"acceptedDate"`
	RejectedDate *time.Time         `bson:"rejectedDate"`
}

type AnnouncementDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	User        string             `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

type PaymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Name          string             `bson:"name"`
	Amount        float64            `bson:"amount"`
	Month         string             `bson:"month"`
	AgreementID   string             `bson:"agreementId"`
	TransactionID string             `bson:"transactionId,omitempty"`
	ApartmentNo   string             `bson:"apartmentNo"`
	FloorNo       string             `bson:"floorNo"`
	BlockName     string             `bson:"blockName"`
	CouponCode    string             `bson:"couponCode,omitempty"`
	Date          time.Time          `bson:"date"`
}

type CouponDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	CouponCode         string             `bson:"couponCode"`
	DiscountPercentage float64            `bson:"discountPercentage"`
	CouponDescription  string             `bson:"couponDescription"`
}
