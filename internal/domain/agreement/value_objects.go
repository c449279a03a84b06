package agreement

import (
	"errors"
	"strings"

	"building-management/internal/domain/user"
)

var ErrApartmentRequired = errors.New("apartment reference is required")

// ApartmentRef points at the apartment being rented and snapshots the
// descriptive fields shown to administrators.
type ApartmentRef struct {
	ID          string
	ApartmentNo string
	FloorNo     string
	BlockName   string
	Rent        float64
}

func NewApartmentRef(id, apartmentNo, floorNo, blockName string, rent float64) (ApartmentRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ApartmentRef{}, ErrApartmentRequired
	}
	if rent < 0 {
		return ApartmentRef{}, ErrNegativeRent
	}
	return ApartmentRef{
		ID:          id,
		ApartmentNo: strings.TrimSpace(apartmentNo),
		FloorNo:     strings.TrimSpace(floorNo),
		BlockName:   strings.TrimSpace(blockName),
		Rent:        rent,
	}, nil
}

type Tenant struct {
	Email user.Email
	Name  string
}
