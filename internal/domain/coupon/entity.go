package coupon

import "strings"

type Coupon struct {
	id          string
	code        Code
	discount    Discount
	description string
}

func NewCoupon(code string, percentOff float64, description string) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewPercentageDiscount(percentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		code:        couponCode,
		discount:    discount,
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructCoupon(id string, code Code, discount Discount, description string) *Coupon {
	return &Coupon{id: id, code: code, discount: discount, description: description}
}

func (c *Coupon) ApplyDiscount(basePriceCents int64) int64 {
	return c.discount.Apply(basePriceCents)
}

func (c *Coupon) ID() string          { return c.id }
func (c *Coupon) Code() Code          { return c.code }
func (c *Coupon) Discount() Discount  { return c.discount }
func (c *Coupon) Description() string { return c.description }
