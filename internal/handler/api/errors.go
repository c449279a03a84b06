package api

import (
	"net/http"

	"building-management/internal/handler/httperr"
	"building-management/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Ordered: specific sentinels first, their families after.
var errorTable = []errorMapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized access"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden access"},
	{errs.ErrInvalidID, http.StatusBadRequest, "Invalid id"},
	{errs.ErrBadRequest, http.StatusBadRequest, "Invalid request"},
	{errs.ErrAgreementNotFound, http.StatusNotFound, "Agreement not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrCouponNotFound, http.StatusNotFound, "Coupon not found"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid agreement status transition"},
	{errs.ErrTransitionConflict, http.StatusConflict, "Agreement status changed concurrently"},
	{errs.ErrAgreementNotSettleable, http.StatusConflict, "Agreement is not accepted or already settled"},
	{errs.ErrDuplicate, http.StatusConflict, "Record already exists"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
	{errs.ErrProvider, http.StatusBadGateway, "Payment provider error"},
}

// abortWithUsecaseError renders a usecase error with the status of the
// first matching sentinel, 500 otherwise.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrBadRequest), "Invalid request", err.Error())
}
