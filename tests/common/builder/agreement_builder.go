//go:build unit || e2e

package builder

import (
	"time"

	"building-management/internal/domain/agreement"
	"building-management/internal/domain/user"
	reqdto "building-management/internal/handler/dto/request"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AgreementBuilder struct {
	ID          string
	UserName    string
	UserEmail   string
	ApartmentID string
	ApartmentNo string
	FloorNo     string
	BlockName   string
	Rent        float64
	Status      string
	CreatedAt   time.Time
}

func NewAgreementBuilder() *AgreementBuilder {
	return &AgreementBuilder{
		ID:          primitive.NewObjectID().Hex(),
		UserName:    "Test User",
		UserEmail:   "test@example.com",
		ApartmentID: primitive.NewObjectID().Hex(),
		ApartmentNo: "A-101",
		FloorNo:     "1",
		BlockName:   "A",
		Rent:        1200,
		Status:      "pending",
		CreatedAt:   time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (a *AgreementBuilder) With(mutate func(*AgreementBuilder)) *AgreementBuilder {
	mutate(a)
	return a
}

func (a *AgreementBuilder) WithStatus(status string) *AgreementBuilder {
	a.Status = status
	return a
}

// BuildDomain reconstructs a stored agreement; decided statuses get a
// matching decision date one day after creation.
func (a *AgreementBuilder) BuildDomain() (*agreement.Agreement, error) {
	email, err := user.NewEmail(a.UserEmail)
	if err != nil {
		return nil, err
	}
	status, err := agreement.NewStatus(a.Status)
	if err != nil {
		return nil, err
	}
	apt, err := agreement.NewApartmentRef(a.ApartmentID, a.ApartmentNo, a.FloorNo, a.BlockName, a.Rent)
	if err != nil {
		return nil, err
	}

	accepted, rejected := a.decisionDates()
	return agreement.ReconstructAgreement(a.ID, agreement.Tenant{Email: email, Name: a.UserName}, apt, status, a.CreatedAt, accepted, rejected), nil
}

func (a *AgreementBuilder) BuildView() *queries.AgreementView {
	accepted, rejected := a.decisionDates()
	return &queries.AgreementView{
		ID:           a.ID,
		UserName:     a.UserName,
		UserEmail:    a.UserEmail,
		ApartmentID:  a.ApartmentID,
		ApartmentNo:  a.ApartmentNo,
		FloorNo:      a.FloorNo,
		BlockName:    a.BlockName,
		Rent:         a.Rent,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
		AcceptedDate: accepted,
		RejectedDate: rejected,
	}
}

func (a *AgreementBuilder) BuildDTO() reqdto.SaveAgreementRequest {
	return reqdto.SaveAgreementRequest{
		UserName:    a.UserName,
		UserEmail:   a.UserEmail,
		ApartmentID: a.ApartmentID,
		ApartmentNo: a.ApartmentNo,
		FloorNo:     a.FloorNo,
		BlockName:   a.BlockName,
		Rent:        a.Rent,
	}
}

func (a *AgreementBuilder) decisionDates() (accepted, rejected *time.Time) {
	decided := a.CreatedAt.Add(24 * time.Hour)
	switch a.Status {
	case "accepted":
		accepted = &decided
	case "rejected":
		rejected = &decided
	}
	return accepted, rejected
}
