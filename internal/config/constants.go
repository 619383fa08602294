package config

import "time"

// Environment variable names
const (
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvPort                 = "PORT"
	EnvAdminAPIKey          = "ADMIN_API_KEY"
	EnvLogDir               = "LOG_DIR"
	EnvStoreDriver          = "STORE_DRIVER"
	EnvSQLitePath           = "SQLITE_PATH"
	EnvDBUser               = "DB_USER"
	EnvDBPassword           = "DB_PASSWORD"
	EnvDBHost               = "DB_HOST"
	EnvDBPort               = "DB_PORT"
	EnvDBName               = "DB_NAME"
	EnvDBMaxConns           = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime    = "DB_MAX_CONN_LIFETIME"
	EnvAPIBaseURL           = "API_BASE_URL"
	EnvAPITimeout           = "API_TIMEOUT"
	EnvAPIRequestsPerMinute = "API_REQUESTS_PER_MINUTE"
	EnvAPISafetyMargin      = "API_SAFETY_MARGIN"
	EnvAPICooldown          = "API_COOLDOWN"
	EnvListingTTL           = "LISTING_TTL"
	EnvMarketFeePercent     = "MARKET_FEE_PERCENT"
	EnvReconcileInterval    = "RECONCILE_INTERVAL"
	EnvItemCacheSize        = "ITEM_CACHE_SIZE"
	EnvStaticListings       = "STATIC_LISTINGS"
	EnvBaseItemID           = "BASE_ITEM_ID"
)

// Store drivers
const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultPort                 = "8080"
	DefaultStoreDriver          = StoreDriverSQLite
	DefaultSQLitePath           = "data/tradingpost.db"
	DefaultDBUser               = "postgres"
	DefaultDBPassword           = "postgres"
	DefaultDBHost               = "localhost"
	DefaultDBPort               = "5432"
	DefaultDBName               = "tradingpost"
	DefaultDBMaxConns           = 10
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultAPIBaseURL           = "https://api.guildwars2.com"
	DefaultAPITimeout           = 30 * time.Second
	DefaultAPIRequestsPerMinute = 600
	DefaultAPISafetyMargin      = 0.9
	DefaultAPICooldown          = time.Minute
	DefaultListingTTL           = 120 * time.Second
	DefaultMarketFeePercent     = 15
	DefaultReconcileInterval    = 5 * time.Minute
	DefaultItemCacheSize        = 4096
	DefaultBaseItemID           = 19684
)

// Static listing list syntax: itemID:price pairs separated by commas
const (
	StaticListingSeparator = ","
	StaticListingPairSep   = ":"
)
