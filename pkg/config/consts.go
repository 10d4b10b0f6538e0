package config

const (
	EnvPrefix = "SRB"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SQLiteDefaultDSN = "file:saferoute-bridge.db?_pragma=foreign_keys(1)"

	EnvAppEnv = "SRB_APP_ENV"
	EnvPort   = "SRB_APP_PORT"

	EnvDBDSN  = "SRB_DB_DSN"
	EnvDBHost = "SRB_DB_HOST"
	EnvDBUser = "SRB_DB_USER"
	EnvDBName = "SRB_DB_NAME"

	EnvRedisURL = "SRB_REDIS_URL"

	EnvSafeRouteToken  = "SRB_SAFEROUTE_TOKEN"
	EnvSafeRouteShopID = "SRB_SAFEROUTE_SHOP_ID"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
