//go:build unit

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"building-management/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := jwt.NewService(testSecret, 365*24*time.Hour)
	assert.Equal(t, 8760*time.Hour, svc.TokenDuration())

	identities := []jwt.Identity{
		{Email: "tenant@example.com"},
		{Email: "admin@example.com", Name: "Admin", Photo: "https://example.com/a.png"},
	}

	for _, identity := range identities {
		t.Run(identity.Email, func(t *testing.T) {
			token, err := svc.Issue(identity)
			require.NoError(t, err)

			got, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, identity, got)
		})
	}
}

func TestIssue(t *testing.T) {
	t.Run("error: empty secret", func(t *testing.T) {
		_, err := jwt.NewService("", time.Hour).Issue(jwt.Identity{Email: "a@example.com"})
		assert.ErrorIs(t, err, jwt.ErrSigning)
	})

	t.Run("error: missing email claim", func(t *testing.T) {
		_, err := jwt.NewService(testSecret, time.Hour).Issue(jwt.Identity{Name: "nobody"})
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})
}

func TestVerify(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := jwt.NewService(testSecret, 365*24*time.Hour).WithNow(func() time.Time { return now })

	token, err := svc.Issue(jwt.Identity{Email: "tenant@example.com"})
	require.NoError(t, err)

	t.Run("success: inside the validity window", func(t *testing.T) {
		now = issuedAt.Add(364 * 24 * time.Hour)
		_, err := svc.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("error: past the validity window", func(t *testing.T) {
		now = issuedAt.Add(366 * 24 * time.Hour)
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: tampered signature", func(t *testing.T) {
		now = issuedAt
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err := svc.Verify(tampered)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		now = issuedAt
		other := jwt.NewService("another-secret", time.Hour).WithNow(func() time.Time { return issuedAt })
		foreign, err := other.Issue(jwt.Identity{Email: "tenant@example.com"})
		require.NoError(t, err)

		_, err = svc.Verify(foreign)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: malformed token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: unsigned token", func(t *testing.T) {
		unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
			"email": "tenant@example.com",
			"exp":   issuedAt.Add(time.Hour).Unix(),
		})
		raw, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(raw)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
