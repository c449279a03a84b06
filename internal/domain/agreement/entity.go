package agreement

import (
	"errors"
	"strings"
	"time"

	"building-management/internal/domain/user"
	"building-management/internal/pkg/ptr"
)

var (
	ErrInvalidStatus     = errors.New("invalid agreement status")
	ErrInvalidTransition = errors.New("invalid agreement status transition")
	ErrStatusMismatch    = errors.New("agreement does not have the requested status")
	ErrNegativeRent      = errors.New("rent cannot be negative")
)

// Agreement is a tenancy request linking a tenant to an apartment.
//
// Lifecycle:
//
//	pending  -> accepted | rejected
//	accepted -> rejected (revocation)
//	accepted -> settled (converted into a payment, deleted)
//
// rejected is terminal. At most one of acceptedDate and rejectedDate is set,
// and it always matches the current status.
type Agreement struct {
	id           string
	tenant       Tenant
	apartment    ApartmentRef
	status       Status
	createdAt    time.Time
	acceptedDate *time.Time
	rejectedDate *time.Time
}

func NewAgreement(tenantEmail user.Email, tenantName string, apartment ApartmentRef, now time.Time) (*Agreement, error) {
	if apartment.ID == "" {
		return nil, ErrApartmentRequired
	}
	return &Agreement{
		tenant:    Tenant{Email: tenantEmail, Name: strings.TrimSpace(tenantName)},
		apartment: apartment,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructAgreement(
	id string,
	tenant Tenant,
	apartment ApartmentRef,
	status Status,
	createdAt time.Time,
	acceptedDate, rejectedDate *time.Time,
) *Agreement {
	return &Agreement{
		id:           id,
		tenant:       tenant,
		apartment:    apartment,
		status:       status,
		createdAt:    createdAt,
		acceptedDate: acceptedDate,
		rejectedDate: rejectedDate,
	}
}

// Transition moves the agreement to an administrator's decision and stamps
// the matching date. It returns the status the agreement had before, which
// callers use as the optimistic concurrency guard when persisting.
func (a *Agreement) Transition(to Status, now time.Time) (Status, error) {
	if !to.IsDecision() {
		return "", ErrInvalidStatus
	}
	from := a.status
	if !canTransition(from, to) {
		return "", ErrInvalidTransition
	}
	a.status = to
	a.stamp(to, now)
	return from, nil
}

// StampDecision refreshes the decision date of the current status.
func (a *Agreement) StampDecision(status Status, now time.Time) error {
	if !status.IsDecision() {
		return ErrInvalidStatus
	}
	if a.status != status {
		return ErrStatusMismatch
	}
	a.stamp(status, now)
	return nil
}

func (a *Agreement) stamp(status Status, now time.Time) {
	switch status {
	case StatusAccepted:
		a.acceptedDate = ptr.Of(now)
		a.rejectedDate = nil
	case StatusRejected:
		a.rejectedDate = ptr.Of(now)
		a.acceptedDate = nil
	}
}

// TenantRole is the role the tenant holds while the agreement is in its
// current status.
func (a *Agreement) TenantRole() user.Role {
	if a.status == StatusAccepted {
		return user.RoleMember
	}
	return user.RoleUser
}

func (a *Agreement) CanSettle() bool {
	return a.status == StatusAccepted
}

func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted:
		return to == StatusRejected
	default:
		return false
	}
}

func (a *Agreement) ID() string               { return a.id }
func (a *Agreement) Tenant() Tenant           { return a.tenant }
func (a *Agreement) Apartment() ApartmentRef  { return a.apartment }
func (a *Agreement) Status() Status           { return a.status }
func (a *Agreement) CreatedAt() time.Time     { return a.createdAt }
func (a *Agreement) AcceptedDate() *time.Time { return a.acceptedDate }
func (a *Agreement) RejectedDate() *time.Time { return a.rejectedDate }
