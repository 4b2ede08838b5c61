// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, database paths, rate limiting,
// notification retry behavior, and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "surfturf-orders")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// NotifyConfig groups notification-dispatch tunables. The retry counts and
// sweep interval are part of the delivery contract the shop channels rely on.
type NotifyConfig struct {
	EmailJSEndpoint string        // EMAILJS_ENDPOINT (override for tests/self-hosting)
	MaxRetries      int           // NOTIFY_MAX_RETRIES per immediate send (default 3)
	BackoffBase     time.Duration // NOTIFY_BACKOFF_BASE first retry delay (default 1s)
	SweepInterval   time.Duration // NOTIFY_SWEEP_INTERVAL backlog sweep period (default 30s)
	MaxBacklogTries int           // NOTIFY_BACKLOG_CEILING drop entries at this attempt count (default 5)
	HTTPTimeout     time.Duration // NOTIFY_HTTP_TIMEOUT per outbound request
}

// AdminConfig holds the fixed admin credential pair and session lifetime.
// This is deliberately not a real auth model; it gates the settings endpoints
// for a single operator.
type AdminConfig struct {
	Username   string        // ADMIN_USER
	Password   string        // ADMIN_PASS
	SessionTTL time.Duration // ADMIN_SESSION_TTL (default 24h)
}

// ShopDefaults seeds the shop-contact configuration when no record has been
// saved yet.
type ShopDefaults struct {
	PhoneNumber string // SHOP_PHONE
	Email       string // SHOP_EMAIL
	Name        string // SHOP_NAME
	Address     string // SHOP_ADDRESS
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	DBPath string // SQLite path

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Domain
	Notify NotifyConfig
	Admin  AdminConfig
	Shop   ShopDefaults

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// App
		DBPath: getenv("DB_PATH", "orders.db"),

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		// Notifications
		Notify: NotifyConfig{
			EmailJSEndpoint: getenv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			MaxRetries:      getint("NOTIFY_MAX_RETRIES", 3),
			BackoffBase:     getdur("NOTIFY_BACKOFF_BASE", time.Second),
			SweepInterval:   getdur("NOTIFY_SWEEP_INTERVAL", 30*time.Second),
			MaxBacklogTries: getint("NOTIFY_BACKLOG_CEILING", 5),
			HTTPTimeout:     getdur("NOTIFY_HTTP_TIMEOUT", 10*time.Second),
		},

		// Admin
		Admin: AdminConfig{
			Username:   getenv("ADMIN_USER", "admin"),
			Password:   getenv("ADMIN_PASS", "surfturf2025"),
			SessionTTL: getdur("ADMIN_SESSION_TTL", 24*time.Hour),
		},

		// Shop defaults
		Shop: ShopDefaults{
			PhoneNumber: getenv("SHOP_PHONE", "0847367281"),
			Email:       getenv("SHOP_EMAIL", "surfandturfcoffee@gmail.com"),
			Name:        getenv("SHOP_NAME", "Surf & Turf Coffee"),
			Address:     getenv("SHOP_ADDRESS", "34 Holtzhausen Rd, Potchefstroom"),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "surfturf-orders"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if strings.TrimSpace(cfg.Notify.EmailJSEndpoint) == "" {
		return cfg, errors.New("EMAILJS_ENDPOINT must not be empty")
	}
	if cfg.Notify.MaxRetries < 1 {
		return cfg, errors.New("NOTIFY_MAX_RETRIES must be >= 1")
	}
	if cfg.Notify.BackoffBase <= 0 {
		return cfg, errors.New("NOTIFY_BACKOFF_BASE must be > 0")
	}
	if cfg.Notify.SweepInterval <= 0 {
		return cfg, errors.New("NOTIFY_SWEEP_INTERVAL must be > 0")
	}
	if cfg.Notify.MaxBacklogTries < 1 {
		return cfg, errors.New("NOTIFY_BACKLOG_CEILING must be >= 1")
	}
	if strings.TrimSpace(cfg.Admin.Username) == "" || strings.TrimSpace(cfg.Admin.Password) == "" {
		return cfg, errors.New("ADMIN_USER and ADMIN_PASS must not be empty")
	}
	if cfg.Admin.SessionTTL <= 0 {
		return cfg, errors.New("ADMIN_SESSION_TTL must be > 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
