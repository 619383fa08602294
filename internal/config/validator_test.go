package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                 8080,
		LogLevel:             DefaultLogLevel,
		LogFormat:            DefaultLogFormat,
		Environment:          DefaultEnvironment,
		StoreDriver:          StoreDriverSQLite,
		SQLitePath:           DefaultSQLitePath,
		DBMaxConns:           DefaultDBMaxConns,
		DBMaxConnIdleTime:    DefaultDBMaxConnIdleTime,
		DBMaxConnLifetime:    DefaultDBMaxConnLifetime,
		APIBaseURL:           DefaultAPIBaseURL,
		APITimeout:           DefaultAPITimeout,
		APIRequestsPerMinute: DefaultAPIRequestsPerMinute,
		APISafetyMargin:      DefaultAPISafetyMargin,
		APICooldown:          DefaultAPICooldown,
		ListingTTL:           DefaultListingTTL,
		MarketFeePercent:     DefaultMarketFeePercent,
		ReconcileInterval:    DefaultReconcileInterval,
		ItemCacheSize:        DefaultItemCacheSize,
		StaticListings:       map[int]int{},
		BaseItemID:           DefaultBaseItemID,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	t.Run("reports every failure by env name", func(t *testing.T) {
		cfg := validConfig()
		cfg.ListingTTL = 0
		cfg.APIRequestsPerMinute = 0

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvListingTTL)
		assert.Contains(t, err.Error(), EnvAPIRequestsPerMinute)
	})

	t.Run("postgres needs connection fields", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = StoreDriverPostgres
		cfg.SQLitePath = ""

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDBHost)
		assert.NotContains(t, err.Error(), EnvSQLitePath)
	})

	t.Run("negative static price", func(t *testing.T) {
		cfg := validConfig()
		cfg.StaticListings = map[int]int{19721: -1}
		assert.Error(t, Validate(cfg))
	})

	t.Run("zero fee is allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.MarketFeePercent = 0
		cfg.APICooldown = time.Second
		assert.NoError(t, Validate(cfg))
	})
}
