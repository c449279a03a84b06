package shared

import (
	"context"

	"building-management/internal/domain/agreement"
	"building-management/internal/domain/announcement"
	"building-management/internal/domain/coupon"
	"building-management/internal/domain/payment"
	"building-management/internal/domain/user"
)

type UnitOfWork interface {
	// Within: all-or-nothing execution of several writes. Falls back to
	// sequential execution when the store runs without transactions.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Repositories: single-operation access outside of a transaction
	Repositories() Tx
}

type Tx interface {
	Users() UserRepository
	Agreements() AgreementRepository
	Payments() PaymentRepository
	Announcements() AnnouncementRepository
	Coupons() CouponRepository
}

// UpdateCounts reports how many records a conditional update matched and changed.
type UpdateCounts struct {
	Matched  int64
	Modified int64
}

type UserRepository interface {
	// CreateIfAbsent inserts the user unless one with the same email exists.
	CreateIfAbsent(ctx context.Context, u *user.User) (created bool, err error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateRole(ctx context.Context, email user.Email, role user.Role) error
}

type AgreementRepository interface {
	Create(ctx context.Context, a *agreement.Agreement) (string, error)
	FindByID(ctx context.Context, id string) (*agreement.Agreement, error)
	// SaveDecision persists status and decision dates only while the stored
	// status still equals expected.
	SaveDecision(ctx context.Context, a *agreement.Agreement, expected agreement.Status) (UpdateCounts, error)
	// DeleteSettleable removes the agreement only if it is accepted.
	DeleteSettleable(ctx context.Context, id string) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (string, error)
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *announcement.Announcement) (string, error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (string, error)
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
}
