package repository

import (
	"time"

	"building-management/internal/domain/agreement"
	"building-management/internal/domain/coupon"
	"building-management/internal/domain/user"
	"building-management/internal/infra/docstore"
)

func toUserDomain(doc docstore.UserDoc) (*user.User, error) {
	email, err := user.NewEmail(doc.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(doc.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(email, doc.Name, doc.Photo, role, time.UnixMilli(doc.Timestamp).UTC()), nil
}

func toAgreementDomain(doc docstore.AgreementDoc) (*agreement.Agreement, error) {
	status, err := agreement.NewStatus(doc.Status)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(doc.UserEmail)
	if err != nil {
		return nil, err
	}
	return agreement.ReconstructAgreement(
		doc.ID.Hex(),
		agreement.Tenant{Email: email, Name: doc.UserName},
		agreement.ApartmentRef{
			ID:          doc.ApartmentID,
			ApartmentNo: doc.ApartmentNo,
			FloorNo:     doc.FloorNo,
			BlockName:   doc.BlockName,
			Rent:        doc.Rent,
		},
		status,
		doc.CreatedAt,
		doc.AcceptedDate,
		doc.RejectedDate,
	), nil
}

func toCouponDomain(doc docstore.CouponDoc) (*coupon.Coupon, error) {
	discount, err := coupon.NewPercentageDiscount(doc.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructCoupon(doc.ID.Hex(), coupon.Code(doc.CouponCode), discount, doc.CouponDescription), nil
}
