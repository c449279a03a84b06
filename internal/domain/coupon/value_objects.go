package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Codes are matched exactly as stored, so no case folding happens here.
var couponCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,40}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	percentOff float64
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if math.IsNaN(percentOff) || percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) PercentOff() float64 {
	return d.percentOff
}

func (d Discount) Apply(basePriceCents int64) int64 {
	result := basePriceCents - d.CalculateDiscountAmount(basePriceCents)
	if result < 0 {
		return 0
	}
	return result
}

func (d Discount) CalculateDiscountAmount(priceCents int64) int64 {
	return int64(math.Round(float64(priceCents) * (d.percentOff / 100.0)))
}
