//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"building-management/internal/handler/api"
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
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.PUT("/users/:email", s.handler.Upsert)
	s.router.GET("/user/:email", s.handler.Get)
	s.router.GET("/fetchUserProfile", s.handler.Profile)
	s.router.GET("/fetchMembers", s.handler.ListByRole)
	s.router.PUT("/updateUserRole/:email", s.handler.UpdateRole)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestUpsert() {
	b := builder.NewUserBuilder()
	url := "/users/" + b.Email
	reqBody := b.BuildDTO()
	view := b.BuildView()

	s.Run("success: email comes from the path", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), commands.UpsertUserRequest{
			Email: b.Email,
			Name:  reqBody.Name,
			Photo: reqBody.Photo,
			Role:  reqBody.Role,
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.Email, body.Email)
		s.Equal("user", body.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []handlerCase{
			{name: "unknown role", mutate: testutil.Field("role", "owner"), expectCode: http.StatusBadRequest},
			{name: "name length invalid (201 chars)", mutate: testutil.Field("name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "role omitted", mutate: testutil.Field("role", nil), expectCode: http.StatusOK},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 403 when a privileged role is requested", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("admin"), errs.ErrForbidden)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("role", "admin")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	b := builder.NewUserBuilder().AsMember()

	s.Run("success: returns the user", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), b.Email).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/"+b.Email, nil, "")

		var body queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("member", body.Role)
	})

	s.Run("success: unknown user renders null", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/ghost@example.com", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("null", rec.Body.String())
	})

	s.Run("error: database failure is 500", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), b.Email).
			Return(nil, errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/"+b.Email, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *UserHandlerTestSuite) TestProfile() {
	s.Run("error: unknown user is 404 on the profile route", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fetchUserProfile?email=ghost@example.com", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: missing email is 400", func() {
		s.mockQueries.EXPECT().GetByEmail(gomock.Any(), "").
			Return(nil, errs.Mark(errors.New("email is required"), errs.ErrBadRequest)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fetchUserProfile", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *UserHandlerTestSuite) TestListByRole() {
	s.Run("success: passes the role query through", func() {
		members := []*queries.UserView{
			builder.NewUserBuilder().AsMember().BuildView(),
			builder.NewUserBuilder().WithEmail("second@example.com").AsMember().BuildView(),
		}
		s.mockQueries.EXPECT().ListByRole(gomock.Any(), "member").Return(members, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fetchMembers?role=member", nil, "")

		var body []queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

func (s *UserHandlerTestSuite) TestUpdateRole() {
	b := builder.NewUserBuilder()
	url := "/updateUserRole/" + b.Email

	s.Run("success: returns the updated user", func() {
		s.mockCommands.EXPECT().UpdateRole(gomock.Any(), b.Email, "member").
			Return(builder.NewUserBuilder().AsMember().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "member"}, "")

		var body queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("member", body.Role)
	})

	s.Run("error: 400 on missing or unknown role", func() {
		for _, body := range []map[string]any{{}, {"role": "owner"}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 404 for an unknown user", func() {
		s.mockCommands.EXPECT().UpdateRole(gomock.Any(), b.Email, "user").Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "user"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
