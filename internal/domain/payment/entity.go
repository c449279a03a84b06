package payment

import (
	"errors"
	"math"
	"strings"
	"time"

	"building-management/internal/domain/user"
)

var (
	ErrAgreementRequired = errors.New("settled agreement id is required")
	ErrInvalidAmount     = errors.New("payment amount must not be negative")
)

// Payment records a settled rent. It is written exactly once, together with
// the removal of the accepted agreement it settles.
type Payment struct {
	id            string
	email         user.Email
	name          string
	amount        float64
	month         string
	agreementID   string
	transactionID string
	apartment     Apartment
	couponCode    string
	date          time.Time
}

type Apartment struct {
	ApartmentNo string
	FloorNo     string
	BlockName   string
}

type Params struct {
	Email         user.Email
	Name          string
	Amount        float64
	Month         string
	AgreementID   string
	TransactionID string
	Apartment     Apartment
	CouponCode    string
}

func NewPayment(p Params, now time.Time) (*Payment, error) {
	agreementID := strings.TrimSpace(p.AgreementID)
	if agreementID == "" {
		return nil, ErrAgreementRequired
	}
	if math.IsNaN(p.Amount) || p.Amount < 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		email:         p.Email,
		name:          strings.TrimSpace(p.Name),
		amount:        p.Amount,
		month:         strings.TrimSpace(p.Month),
		agreementID:   agreementID,
		transactionID: strings.TrimSpace(p.TransactionID),
		apartment:     p.Apartment,
		couponCode:    strings.TrimSpace(p.CouponCode),
		date:          now,
	}, nil
}

func (p *Payment) ID() string            { return p.id }
func (p *Payment) Email() user.Email     { return p.email }
func (p *Payment) Name() string          { return p.name }
func (p *Payment) Amount() float64       { return p.amount }
func (p *Payment) Month() string         { return p.month }
func (p *Payment) AgreementID() string   { return p.agreementID }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Apartment() Apartment  { return p.apartment }
func (p *Payment) CouponCode() string    { return p.couponCode }
func (p *Payment) Date() time.Time       { return p.date }
