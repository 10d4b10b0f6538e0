package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	SafeRoute    SafeRouteConfig
	Widget       WidgetConfig
	Payments     PaymentsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SRB_APP_ENV" required:"true"`
	Port         string `envconfig:"SRB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SRB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SRB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SRB_DB_DSN"`
	Driver string `envconfig:"SRB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SRB_DB_HOST"`
	LegacyPort     int    `envconfig:"SRB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SRB_DB_USER"`
	LegacyPassword string `envconfig:"SRB_DB_PASSWORD"`
	LegacyName     string `envconfig:"SRB_DB_NAME"`
	LegacySSLMode  string `envconfig:"SRB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SRB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SRB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SRB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SRB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"SRB_REDIS_URL" required:"true"`
	Password     string        `envconfig:"SRB_REDIS_PASSWORD"`
	DB           int           `envconfig:"SRB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SRB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SRB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SRB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SRB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SRB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SafeRouteConfig carries the credentials and endpoints of the shipping
// provider this service bridges to.
type SafeRouteConfig struct {
	Token          string        `envconfig:"SRB_SAFEROUTE_TOKEN" required:"true"`
	ShopID         string        `envconfig:"SRB_SAFEROUTE_SHOP_ID" required:"true"`
	APIBase        string        `envconfig:"SRB_SAFEROUTE_API_BASE" default:"https://api.saferoute.ru"`
	RequestTimeout time.Duration `envconfig:"SRB_SAFEROUTE_REQUEST_TIMEOUT" default:"30s"`

	// NotifyOnStatus is forwarded as the customer-notification flag on every
	// history row appended from a provider status webhook. The provider
	// contract does not pin its polarity, so it stays operator-controlled.
	NotifyOnStatus bool `envconfig:"SRB_SAFEROUTE_NOTIFY_ON_STATUS" default:"true"`
}

type WidgetConfig struct {
	SessionCookie   string        `envconfig:"SRB_WIDGET_SESSION_COOKIE" default:"storefront_session"`
	SessionTTL      time.Duration `envconfig:"SRB_WIDGET_SESSION_TTL" default:"24h"`
	DefaultLang     string        `envconfig:"SRB_WIDGET_DEFAULT_LANG" default:"ru"`
	DefaultCurrency string        `envconfig:"SRB_WIDGET_DEFAULT_CURRENCY" default:"rub"`
}

type PaymentsConfig struct {
	Methods []string `envconfig:"SRB_PAYMENT_METHODS" default:"cod,card,online"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SRB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SRB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = SQLiteDefaultDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
