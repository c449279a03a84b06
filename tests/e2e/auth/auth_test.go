//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"building-management/internal/domain/user"
	"building-management/internal/handler/dto/request"
	"building-management/internal/handler/dto/response"
	"building-management/tests/common/authtest"
	"building-management/tests/common/dbtest"
	"building-management/tests/common/httptest"
	"building-management/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tokenURL       = "/jwt"
	agreementsURL  = "/agreements"
	fetchAllURL    = "/fetchAllAgreements"
	adminEmail     = "admin@example.com"
	memberEmail    = "member@example.com"
	plainUserEmail = "user@example.com"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, adminEmail, string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, memberEmail, string(user.RoleMember))
	dbtest.CreateTestUser(s.T(), s.DB, plainUserEmail, string(user.RoleUser))
}

func (s *authSuite) TestIssueToken() {
	tests := []struct {
		name           string
		body           any
		expectedStatus int
		description    string
	}{
		{
			name:           "valid identity",
			body:           request.IssueTokenRequest{Email: plainUserEmail, Name: "Plain User"},
			expectedStatus: http.StatusOK,
			description:    "a token is issued for a well-formed email",
		},
		{
			name:           "identity not stored yet",
			body:           request.IssueTokenRequest{Email: "newcomer@example.com"},
			expectedStatus: http.StatusOK,
			description:    "issuing does not require a stored user",
		},
		{
			name:           "missing email",
			body:           map[string]any{"name": "No Email"},
			expectedStatus: http.StatusBadRequest,
			description:    "an identity without email is rejected",
		},
		{
			name:           "malformed email",
			body:           request.IssueTokenRequest{Email: "not-an-email"},
			expectedStatus: http.StatusBadRequest,
			description:    "a malformed email is rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, tokenURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.TokenResponse
				err := httptest.DecodeResponseBody(t, w.Body, &res)
				require.NoError(t, err)
				require.NotEmpty(t, res.Token, "token is empty")
			}
		})
	}
}

func (s *authSuite) TestBearerGuard() {
	tests := []struct {
		name           string
		headers        func() map[string]string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "no authorization header",
			headers:        func() map[string]string { return nil },
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "No token provided",
		},
		{
			name: "valid bearer token",
			headers: func() map[string]string {
				return map[string]string{"Authorization": "Bearer " + s.jwtHelper.GenerateToken(s.T(), plainUserEmail)}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "token without bearer scheme",
			headers: func() map[string]string {
				return map[string]string{"Authorization": s.jwtHelper.GenerateToken(s.T(), plainUserEmail)}
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Invalid token",
		},
		{
			name: "garbage token",
			headers: func() map[string]string {
				return map[string]string{"Authorization": "Bearer not.a.token"}
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Invalid token",
		},
		{
			name: "expired token",
			headers: func() map[string]string {
				return map[string]string{"Authorization": "Bearer " + s.jwtHelper.CreateExpiredToken(s.T(), plainUserEmail)}
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Invalid token",
		},
		{
			name: "token signed with another secret",
			headers: func() map[string]string {
				return map[string]string{"Authorization": "Bearer " + s.jwtHelper.CreateForeignToken(s.T(), plainUserEmail)}
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Invalid token",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, agreementsURL, nil, tt.headers())
			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())
				return
			}
			httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
		})
	}
}

func (s *authSuite) TestAdminGuard() {
	tests := []struct {
		name           string
		email          string
		expectedStatus int
	}{
		{name: "admin is admitted", email: adminEmail, expectedStatus: http.StatusOK},
		{name: "member is forbidden", email: memberEmail, expectedStatus: http.StatusForbidden},
		{name: "user is forbidden", email: plainUserEmail, expectedStatus: http.StatusForbidden},
		{name: "unknown identity is forbidden", email: "ghost@example.com", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := authtest.IssueToken(t, s.Router, tt.email)
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fetchAllURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestRoleIsReadPerRequest() {
	s.Run("promotion takes effect without a new token", func() {
		t := s.T()

		token := authtest.IssueToken(t, s.Router, plainUserEmail)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fetchAllURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		dbtest.CreateTestUser(t, s.DB, plainUserEmail, string(user.RoleAdmin))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fetchAllURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestPublicRoutes() {
	s.Run("public endpoints need no token", func() {
		t := s.T()

		for _, path := range []string{"/", "/health", "/apartments", "/apartments/count", "/coupons"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, w.Code, "GET %s", path)
		}
	})
}
