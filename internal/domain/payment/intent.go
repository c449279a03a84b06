package payment

import (
	"errors"
	"math"
)

// MaxAmountCents is the largest single charge the card processor accepts.
const MaxAmountCents int64 = 99_999_999

var (
	ErrInvalidPrice = errors.New("price must be a positive amount")
	ErrPriceTooHigh = errors.New("price exceeds the maximum chargeable amount")
)

// AmountCents converts a decimal price into the smallest currency unit.
func AmountCents(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidPrice
	}
	if price > float64(MaxAmountCents)/100 {
		return 0, ErrPriceTooHigh
	}
	cents := int64(math.Round(price * 100))
	if cents <= 0 {
		return 0, ErrInvalidPrice
	}
	return cents, nil
}
