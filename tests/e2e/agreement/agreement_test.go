//go:build e2e

package agreement_test

import (
	"net/http"
	"testing"

	"building-management/internal/domain/user"
	"building-management/internal/handler/dto/request"
	"building-management/internal/handler/dto/response"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"
	"building-management/tests/common/authtest"
	"building-management/tests/common/dbtest"
	"building-management/tests/common/httptest"
	"building-management/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	adminEmail  = "admin@example.com"
	tenantEmail = "tenant@example.com"
)

type agreementSuite struct {
	e2e.SharedSuite
	adminToken  string
	tenantToken string
	apartmentID string
}

func TestAgreementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(agreementSuite))
}

func (s *agreementSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.adminToken = authtest.CreateAndSignIn(t, s.DB, s.Router, adminEmail, string(user.RoleAdmin))
	s.tenantToken = authtest.IssueToken(t, s.Router, tenantEmail)
	s.apartmentID = dbtest.CreateTestApartment(t, s.DB, "C-301", 1800)

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/users/"+tenantEmail,
		request.UpsertUserRequest{Name: "Tenant"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *agreementSuite) saveAgreement() string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/saveAgreement", request.SaveAgreementRequest{
		UserName:    "Tenant",
		UserEmail:   tenantEmail,
		ApartmentID: s.apartmentID,
		ApartmentNo: "C-301",
		FloorNo:     "3",
		BlockName:   "C",
		Rent:        1800,
	}, "")

	var res response.SaveAgreementResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.True(t, res.Success)
	require.NotEmpty(t, res.InsertedID)
	return res.InsertedID
}

func (s *agreementSuite) decide(id, status, token string) *queries.AgreementView {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/updateAgreementStatus/"+id,
		request.UpdateAgreementStatusRequest{Status: status}, token)
	if w.Code != http.StatusOK {
		return nil
	}
	var view queries.AgreementView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
	return &view
}

func (s *agreementSuite) roleOf(email string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/user/"+email, nil, s.tenantToken)
	var view queries.UserView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	return view.Role
}

func (s *agreementSuite) TestAcceptPromotesTenant() {
	s.Run("accepted agreement makes the tenant a member and the apartment unavailable", func() {
		t := s.T()

		id := s.saveAgreement()
		assert.Equal(t, string(user.RoleUser), s.roleOf(tenantEmail))

		view := s.decide(id, "accepted", s.adminToken)
		require.NotNil(t, view)
		assert.Equal(t, "accepted", view.Status)
		assert.NotNil(t, view.AcceptedDate)
		assert.Nil(t, view.RejectedDate)

		assert.Equal(t, string(user.RoleMember), s.roleOf(tenantEmail))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/agreements/totalUnavailableRooms", nil, s.tenantToken)
		var n int64
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &n)
		assert.Equal(t, int64(1), n)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/apartments", nil, "")
		var apartments []queries.ApartmentView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &apartments)
		for _, a := range apartments {
			assert.Equal(t, a.ID != s.apartmentID, a.Available, "apartment %s", a.ApartmentNo)
		}
	})
}

func (s *agreementSuite) TestRevokeDemotesTenant() {
	s.Run("rejecting an accepted agreement demotes the tenant", func() {
		t := s.T()

		id := s.saveAgreement()
		require.NotNil(t, s.decide(id, "accepted", s.adminToken))
		require.Equal(t, string(user.RoleMember), s.roleOf(tenantEmail))

		view := s.decide(id, "rejected", s.adminToken)
		require.NotNil(t, view)
		assert.Equal(t, "rejected", view.Status)
		assert.NotNil(t, view.RejectedDate)

		assert.Equal(t, string(user.RoleUser), s.roleOf(tenantEmail))
	})
}

func (s *agreementSuite) TestInvalidTransitions() {
	tests := []struct {
		name           string
		setup          func(id string)
		status         string
		token          func() string
		expectedStatus int
	}{
		{
			name:           "repeating a decision conflicts",
			setup:          func(id string) { s.decide(id, "accepted", s.adminToken) },
			status:         "accepted",
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "rejected is terminal",
			setup:          func(id string) { s.decide(id, "rejected", s.adminToken) },
			status:         "accepted",
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "pending is not a decision",
			setup:          func(string) {},
			status:         "pending",
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "tenant cannot decide",
			setup:          func(string) {},
			status:         "accepted",
			token:          func() string { return s.tenantToken },
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			id := s.saveAgreement()
			tt.setup(id)

			w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/updateAgreementStatus/"+id,
				map[string]any{"status": tt.status}, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *agreementSuite) TestUnknownAgreement() {
	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{name: "well-formed id without document", id: "65a1b2c3d4e5f6a7b8c9d0e1", expectedStatus: http.StatusNotFound},
		{name: "malformed id", id: "not-an-object-id", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/updateAgreementStatus/"+tt.id,
				request.UpdateAgreementStatusRequest{Status: "accepted"}, s.adminToken)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *agreementSuite) TestRecordDecisionDate() {
	s.Run("restamping matches only agreements in that status", func() {
		t := s.T()

		accepted := dbtest.CreateTestAgreement(t, s.DB, tenantEmail, s.apartmentID, "accepted")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/updateAcceptedDate/"+accepted, nil, s.adminToken)
		var res response.UpdateResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int64(1), res.MatchedCount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/updateRejectedDate/"+accepted, nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *agreementSuite) TestSaveAgreementValidation() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing email", body: map[string]any{"apartmentId": "65a1b2c3d4e5f6a7b8c9d0e1", "rent": 100}},
		{name: "missing apartment", body: map[string]any{"userEmail": tenantEmail, "rent": 100}},
		{name: "negative rent", body: map[string]any{"userEmail": tenantEmail, "apartmentId": "65a1b2c3d4e5f6a7b8c9d0e1", "rent": -1}},
		{name: "malformed apartment id", body: map[string]any{"userEmail": tenantEmail, "apartmentId": "x", "rent": 100}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/saveAgreement", tt.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Zero(t, dbtest.CountDocuments(t, s.DB, docstore.Agreements, bson.M{}))
		})
	}
}
