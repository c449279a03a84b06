package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers.
// Usecases mark concrete failures with these; handlers map them to HTTP statuses.
var (
	// Authentication errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Request errors
	ErrBadRequest = errors.New("bad request")
	ErrInvalidID  = errors.New("invalid record identifier")

	// Lookup errors
	ErrNotFound          = errors.New("not found")
	ErrAgreementNotFound = errors.New("agreement not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrCouponNotFound    = errors.New("coupon not found")

	// Conflict errors
	ErrConflict               = errors.New("conflict")
	ErrInvalidTransition      = errors.New("invalid agreement status transition")
	ErrTransitionConflict     = errors.New("agreement status changed concurrently")
	ErrAgreementNotSettleable = errors.New("agreement is not accepted or does not exist")
	ErrDuplicate              = errors.New("duplicate record")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrProvider                = errors.New("payment provider error")
	ErrTokenSigning            = errors.New("token signing failed")
)
