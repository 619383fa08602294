package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its struct tag and reports all
// failures at once using the environment variable names
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %q", envName(fe.StructField()), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}

var fieldEnv = map[string]string{
	"Port":                 EnvPort,
	"LogLevel":             EnvLogLevel,
	"LogFormat":            EnvLogFormat,
	"Environment":          EnvEnvironment,
	"StoreDriver":          EnvStoreDriver,
	"SQLitePath":           EnvSQLitePath,
	"DBUser":               EnvDBUser,
	"DBHost":               EnvDBHost,
	"DBPort":               EnvDBPort,
	"DBName":               EnvDBName,
	"DBMaxConns":           EnvDBMaxConns,
	"DBMaxConnIdleTime":    EnvDBMaxConnIdleTime,
	"DBMaxConnLifetime":    EnvDBMaxConnLifetime,
	"APIBaseURL":           EnvAPIBaseURL,
	"APITimeout":           EnvAPITimeout,
	"APIRequestsPerMinute": EnvAPIRequestsPerMinute,
	"APISafetyMargin":      EnvAPISafetyMargin,
	"APICooldown":          EnvAPICooldown,
	"ListingTTL":           EnvListingTTL,
	"MarketFeePercent":     EnvMarketFeePercent,
	"ReconcileInterval":    EnvReconcileInterval,
	"ItemCacheSize":        EnvItemCacheSize,
	"StaticListings":       EnvStaticListings,
	"BaseItemID":           EnvBaseItemID,
}

func envName(field string) string {
	if name, ok := fieldEnv[field]; ok {
		return name
	}
	return field
}
