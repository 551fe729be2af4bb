package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, secrets)
// - default: Values common across all environments (timezone, timeouts, breakpoints)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Calendar CalendarConfig
	Session  SessionConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at the booking API that owns availability and persistence.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	Token   string        `envconfig:"UPSTREAM_TOKEN"`
}

type CalendarConfig struct {
	ShopTimeZone     string `envconfig:"SHOP_TIMEZONE" default:"Asia/Tbilisi"`
	MobileBreakpoint int    `envconfig:"CALENDAR_MOBILE_BREAKPOINT" default:"768"`
	SuccessPath      string `envconfig:"BOOKING_SUCCESS_PATH" default:"/booking/success"`
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

// RedisConfig backs the catalog cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tbilisi"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"14400"` // 4*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// Location resolves the shop time zone, falling back to UTC for unknown names.
func (c CalendarConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.ShopTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:15000/api",
			Timeout: 2 * time.Second,
		},
		Calendar: CalendarConfig{
			ShopTimeZone:     "UTC",
			MobileBreakpoint: 768,
			SuccessPath:      "/booking/success",
		},
		Session: SessionConfig{
			TTL:           5 * time.Minute,
			SweepInterval: time.Minute,
		},
		Redis: RedisConfig{
			TTL: time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
