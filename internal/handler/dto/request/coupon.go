package request

import (
	"building-management/internal/pkg/patch"
	"building-management/internal/usecase/commands"
)

type CreateCouponRequest struct {
	CouponCode         string   `json:"couponCode" binding:"required,max=40"`
	DiscountPercentage *float64 `json:"discountPercentage" binding:"omitempty,min=0,max=100"`
	CouponDescription  string   `json:"couponDescription" binding:"max=500"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		CouponCode:         r.CouponCode,
		DiscountPercentage: patch.Coalesce(r.DiscountPercentage, 0),
		CouponDescription:  r.CouponDescription,
	}
}
