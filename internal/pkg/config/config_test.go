//go:build unit

package config_test

import (
	"testing"
	"time"

	"building-management/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults for optional values", func(t *testing.T) {
		t.Setenv("DB_URI", "mongodb://localhost:27017")
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "buildingManagementDB", cfg.DB.Name)
		assert.True(t, cfg.DB.Transactions)
		assert.Equal(t, 10*time.Second, cfg.DB.OperationTimeout)
		assert.Equal(t, "8760h", cfg.JWT.Duration)
		assert.Equal(t, "usd", cfg.Payment.Currency)
		assert.Contains(t, cfg.CORS.AllowOrigins, "http://localhost:5173")
	})

	t.Run("fails without the token secret", func(t *testing.T) {
		t.Setenv("DB_URI", "mongodb://localhost:27017")
		t.Setenv("ACCESS_TOKEN_SECRET", "")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
