package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Session       SessionConfig
	Mail          MailConfig
	PasswordReset PasswordResetConfig
	Auth          AuthConfig
	Security      SecurityConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins    []string
	MaxBodyBytes      int64
	SearchResultLimit int
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	MinConns       int32
	CACertPath     string
	MigrationsPath string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type SessionConfig struct {
	JWTSecret       string
	JWTIssuer       string
	SessionTTLHours int
	CookieDomain    string
	CookieSecure    bool
}

type MailConfig struct {
	WebhookURL     string
	WebhookSecret  string
	From           string
	AdminAddress   string
	TimeoutSeconds int
}

type PasswordResetConfig struct {
	CodeLength     int
	CodeTTLMinutes int
}

type AuthConfig struct {
	MetricsAuthToken string
}

type SecurityConfig struct {
	BcryptCost int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("SEARCH_RESULT_LIMIT", 50)
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "mentorhub-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "mentorhub")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "mentorhub-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Session defaults
	v.SetDefault("JWT_ISSUER", "mentorhub-api")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("COOKIE_SECURE", true)

	// Mail and password reset defaults
	v.SetDefault("MAIL_FROM", "MentorHub <noreply@mentorhub.local>")
	v.SetDefault("MAIL_TIMEOUT_SECONDS", 10)
	v.SetDefault("VERIFICATION_CODE_LENGTH", 6)
	v.SetDefault("VERIFICATION_CODE_TTL_MINUTES", 15)
	v.SetDefault("BCRYPT_COST", 12)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins:    splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			MaxBodyBytes:      v.GetInt64("MAX_BODY_BYTES"),
			SearchResultLimit: v.GetInt("SEARCH_RESULT_LIMIT"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("DATABASE_URL"),
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			MinConns:       v.GetInt32("DB_MIN_CONNS"),
			CACertPath:     v.GetString("DB_CA_CERT_PATH"),
			MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Session: SessionConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			JWTIssuer:       v.GetString("JWT_ISSUER"),
			SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
			CookieDomain:    v.GetString("COOKIE_DOMAIN"),
			CookieSecure:    v.GetBool("COOKIE_SECURE"),
		},
		Mail: MailConfig{
			WebhookURL:     v.GetString("MAIL_WEBHOOK_URL"),
			WebhookSecret:  v.GetString("MAIL_WEBHOOK_SECRET"),
			From:           v.GetString("MAIL_FROM"),
			AdminAddress:   v.GetString("MAIL_ADMIN_ADDRESS"),
			TimeoutSeconds: v.GetInt("MAIL_TIMEOUT_SECONDS"),
		},
		PasswordReset: PasswordResetConfig{
			CodeLength:     v.GetInt("VERIFICATION_CODE_LENGTH"),
			CodeTTLMinutes: v.GetInt("VERIFICATION_CODE_TTL_MINUTES"),
		},
		Auth: AuthConfig{
			MetricsAuthToken: v.GetString("METRICS_AUTH_TOKEN"),
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Session.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Session.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Server.SearchResultLimit < 0 {
		return fmt.Errorf("SEARCH_RESULT_LIMIT must not be negative")
	}

	// Without a relay, mail is only logged. Acceptable outside production.
	if c.IsProduction() && c.Mail.WebhookURL == "" {
		return fmt.Errorf("MAIL_WEBHOOK_URL is required in production")
	}
	if c.Mail.AdminAddress == "" {
		return fmt.Errorf("MAIL_ADMIN_ADDRESS is required")
	}

	if c.PasswordReset.CodeLength < 4 || c.PasswordReset.CodeLength > 10 {
		return fmt.Errorf("VERIFICATION_CODE_LENGTH must be between 4 and 10")
	}
	if c.PasswordReset.CodeTTLMinutes <= 0 {
		return fmt.Errorf("VERIFICATION_CODE_TTL_MINUTES must be positive")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
