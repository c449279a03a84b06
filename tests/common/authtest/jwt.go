//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"building-management/internal/pkg/config"
	"building-management/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).Issue(jwt.Identity{Email: email})
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token whose window closed an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, email string) string {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := jwt.NewService(h.cfg.Secret, time.Hour).WithNow(past).Issue(jwt.Identity{Email: email})
	require.NoError(t, err)
	return token
}

// CreateForeignToken is signed with a secret the service does not know.
func (h *JWTHelper) CreateForeignToken(t *testing.T, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour).Issue(jwt.Identity{Email: email})
	require.NoError(t, err)
	return token
}
