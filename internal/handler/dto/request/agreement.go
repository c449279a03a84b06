package request

import "building-management/internal/usecase/commands"

type SaveAgreementRequest struct {
	UserName    string  `json:"userName" binding:"max=200"`
	UserEmail   string  `json:"userEmail" binding:"required,email"`
	ApartmentID string  `json:"apartmentId" binding:"required"`
	ApartmentNo string  `json:"apartmentNo"`
	FloorNo     string  `json:"floorNo"`
	BlockName   string  `json:"blockName"`
	Rent        float64 `json:"rent" binding:"min=0"`
}

func (r *SaveAgreementRequest) ToCommand() commands.CreateAgreementRequest {
	return commands.CreateAgreementRequest{
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		ApartmentID: r.ApartmentID,
		ApartmentNo: r.ApartmentNo,
		FloorNo:     r.FloorNo,
		BlockName:   r.BlockName,
		Rent:        r.Rent,
	}
}

type UpdateAgreementStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
