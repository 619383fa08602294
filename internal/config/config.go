package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	AdminAPIKey string
	LogDir      string

	StoreDriver string `validate:"oneof=sqlite postgres"`
	SQLitePath  string `validate:"required_if=StoreDriver sqlite"`

	DBUser            string `validate:"required_if=StoreDriver postgres"`
	DBPassword        string
	DBHost            string        `validate:"required_if=StoreDriver postgres"`
	DBPort            string        `validate:"required_if=StoreDriver postgres"`
	DBName            string        `validate:"required_if=StoreDriver postgres"`
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0s"`
	DBMaxConnLifetime time.Duration `validate:"gt=0s"`

	APIBaseURL           string        `validate:"required,url"`
	APITimeout           time.Duration `validate:"gt=0s"`
	APIRequestsPerMinute int           `validate:"min=1"`
	APISafetyMargin      float64       `validate:"gt=0,lte=1"`
	APICooldown          time.Duration `validate:"gt=0s"`

	ListingTTL        time.Duration `validate:"gt=0s"`
	MarketFeePercent  int           `validate:"min=0,max=100"`
	ReconcileInterval time.Duration `validate:"gt=0s"`
	ItemCacheSize     int           `validate:"min=1"`
	StaticListings    map[int]int   `validate:"dive,keys,min=1,endkeys,min=0"`
	BaseItemID        int           `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		AdminAPIKey: getEnv(EnvAdminAPIKey, ""),
		LogDir:      getEnv(EnvLogDir, ""),

		StoreDriver: getEnv(EnvStoreDriver, DefaultStoreDriver),
		SQLitePath:  getEnv(EnvSQLitePath, DefaultSQLitePath),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		APIBaseURL:           getEnv(EnvAPIBaseURL, DefaultAPIBaseURL),
		APITimeout:           getEnvAsDuration(EnvAPITimeout, DefaultAPITimeout),
		APIRequestsPerMinute: getEnvAsInt(EnvAPIRequestsPerMinute, DefaultAPIRequestsPerMinute),
		APISafetyMargin:      getEnvAsFloat(EnvAPISafetyMargin, DefaultAPISafetyMargin),
		APICooldown:          getEnvAsDuration(EnvAPICooldown, DefaultAPICooldown),

		ListingTTL:        getEnvAsDuration(EnvListingTTL, DefaultListingTTL),
		MarketFeePercent:  getEnvAsInt(EnvMarketFeePercent, DefaultMarketFeePercent),
		ReconcileInterval: getEnvAsDuration(EnvReconcileInterval, DefaultReconcileInterval),
		ItemCacheSize:     getEnvAsInt(EnvItemCacheSize, DefaultItemCacheSize),
		BaseItemID:        getEnvAsInt(EnvBaseItemID, DefaultBaseItemID),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.StaticListings, err = ParseStaticListings(getEnv(EnvStaticListings, ""))
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseStaticListings parses "itemID:price,itemID:price"
func ParseStaticListings(raw string) (map[int]int, error) {
	result := map[int]int{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return result, nil
	}

	for _, pair := range strings.Split(raw, StaticListingSeparator) {
		idStr, priceStr, ok := strings.Cut(strings.TrimSpace(pair), StaticListingPairSep)
		if !ok {
			return nil, fmt.Errorf("invalid %s entry %q: expected itemID:price", EnvStaticListings, pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid %s item id %q: %w", EnvStaticListings, idStr, err)
		}
		price, err := strconv.Atoi(strings.TrimSpace(priceStr))
		if err != nil {
			return nil, fmt.Errorf("invalid %s price %q: %w", EnvStaticListings, priceStr, err)
		}
		result[id] = price
	}
	return result, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
