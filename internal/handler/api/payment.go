package api

import (
	"errors"
	"net/http"

	reqdto "building-management/internal/handler/dto/request"
	resdto "building-management/internal/handler/dto/response"
	"building-management/internal/handler/httperr"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/commands"
	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errAgreementIDRequired   = errors.New("agreementId is required")
	errInvalidIdempotencyKey = errors.New("invalid idempotency key format")
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment intent
// @Description Create a card payment intent for the price, after any coupon discount
// @Tags payments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Retries with the same key return the same intent"
// @Param request body reqdto.CreatePaymentIntentRequest true "Price"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrBadRequest), "Invalid request", err.Error())
		return
	}

	cmd := req.ToCommand()
	cmd.IdempotencyKey = idempotencyKey
	secret, err := h.cmds.CreateIntent(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{ClientSecret: secret})
}

// @Summary Settle payment
// @Description Record the payment and remove the accepted agreement it pays for
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.SettlePaymentRequest true "Payment"
// @Success 200 {object} resdto.SettlePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req reqdto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if req.SettledAgreementID() == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errAgreementIDRequired, errs.ErrBadRequest), "Invalid request", errAgreementIDRequired.Error())
		return
	}

	result, err := h.cmds.Settle(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettleResult(result))
}

// @Summary Payment history
// @Description Payments of a tenant, optionally for one month
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Tenant email"
// @Param month query string false "Month"
// @Success 200 {array} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Router /payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	views, err := h.q.History(c.Request.Context(), c.Query("email"), c.Query("month"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// getIdempotencyKey returns the optional Idempotency-Key header, which must
// be a UUID when present.
func getIdempotencyKey(c *gin.Context) (string, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return "", nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return "", errInvalidIdempotencyKey
	}
	return key.String(), nil
}
