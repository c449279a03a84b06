//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"building-management/internal/handler/api"
	resdto "building-management/internal/handler/dto/response"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/commands"
	"building-management/internal/usecase/queries"
	"building-management/tests/common/builder"
	"building-management/tests/common/httptest"
	"building-management/tests/common/testutil"
	commandsmock "building-management/tests/mock/commands"
	queriesmock "building-management/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/create-payment-intent", s.handler.CreateIntent)
	s.router.POST("/payments", s.handler.Settle)
	s.router.GET("/payments/history", s.handler.History)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	url := "/create-payment-intent"

	s.Run("success: returns the client secret", func() {
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), commands.CreatePaymentIntentRequest{Price: 1200, CouponCode: "SPRING10"}).
			Return("pi_123_secret_abc", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"price": 1200, "couponCode": "SPRING10"}, "")

		var body resdto.PaymentIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pi_123_secret_abc", body.ClientSecret)
	})

	s.Run("success: passes the Idempotency-Key header through", func() {
		key := "5b0c1f0e-3a8e-4c55-9d9f-0d6f4e6a2b11"
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), commands.CreatePaymentIntentRequest{Price: 500, IdempotencyKey: key}).
			Return("pi_9_secret", nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"price": 500}, map[string]string{"Idempotency-Key": key})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"price": 500}, map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on missing or non-positive price", func() {
		for _, body := range []map[string]any{{}, {"price": 0}, {"price": -5}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown coupon", commandsError: errs.ErrCouponNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Coupon not found"},
			{name: "nothing left to charge", commandsError: errs.Mark(errors.New("zero amount"), errs.ErrBadRequest), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "provider failure", commandsError: errs.Mark(errors.New("card_declined"), errs.ErrProvider), expectedStatus: http.StatusBadGateway, expectedMsg: "Payment provider error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return("", tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"price": 100}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestSettle() {
	url := "/payments"
	agreementID := primitive.NewObjectID().Hex()
	b := builder.NewPaymentBuilder(agreementID)
	reqBody := b.BuildDTO()
	result := &commands.SettlePaymentResult{PaymentID: primitive.NewObjectID().Hex(), DeletedCount: 1}

	s.Run("success: returns both write results", func() {
		s.mockCommands.EXPECT().Settle(gomock.Any(), reqBody.ToCommand()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SettlePaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(result.PaymentID, body.PaymentResult.InsertedID)
		s.Equal(int64(1), body.DeleteResult.DeletedCount)
	})

	s.Run("success: agreementIds key is read as the agreement id", func() {
		s.mockCommands.EXPECT().Settle(gomock.Any(), gomock.Cond(func(x any) bool {
			return x.(commands.SettlePaymentRequest).AgreementID == agreementID
		})).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildLegacyBody(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []handlerCase{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("email", "tenant"), expectCode: http.StatusBadRequest},
			{name: "negative amount", mutate: testutil.Field("amount", -1), expectCode: http.StatusBadRequest},
			{name: "no agreement id under either key", mutate: testutil.Field("agreementId", nil), expectCode: http.StatusBadRequest, expectInBody: "agreementId is required"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				if tc.expectInBody != "" {
					s.Contains(rec.Body.String(), tc.expectInBody)
				}
			})
		}
	})

	s.Run("error: 409 when the agreement is not settleable", func() {
		s.mockCommands.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil, errs.ErrAgreementNotSettleable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not accepted or already settled")
	})

	s.Run("error: 409 on a repeated transaction", func() {
		s.mockCommands.EXPECT().Settle(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("E11000"), errs.ErrDuplicate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Record already exists")
	})
}

func (s *PaymentHandlerTestSuite) TestHistory() {
	s.Run("success: passes email and month through", func() {
		views := []*queries.PaymentView{{ID: primitive.NewObjectID().Hex(), Email: "test@example.com", Month: "March", Amount: 1200}}
		s.mockQueries.EXPECT().History(gomock.Any(), "test@example.com", "March").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/history?email=test@example.com&month=March", nil, "")

		var body []queries.PaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("March", body[0].Month)
	})

	s.Run("error: missing email is 400", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), "", "").
			Return(nil, errs.Mark(errors.New("email is required"), errs.ErrBadRequest)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/history", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
