//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"building-management/internal/handler/dto/request"
	"building-management/tests/common/dbtest"
	"building-management/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueToken exchanges an identity for a bearer token through /jwt.
func IssueToken(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/jwt",
		request.IssueTokenRequest{Email: email}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "token is empty")

	return body.Token
}

func CreateAndSignIn(t *testing.T, db *mongo.Database, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return IssueToken(t, router, email)
}
