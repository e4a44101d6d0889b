package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, policy knobs), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Mail     MailConfig
	Reminder ReminderConfig
	Booking  BookingConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	BaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

type MailConfig struct {
	SMTPHost     string `envconfig:"SMTP_HOST" default:""`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	FromAddress  string `envconfig:"REMINDER_FROM_EMAIL" default:""`
	FromName     string `envconfig:"REMINDER_FROM_NAME" default:"Classbook"`
}

type ReminderConfig struct {
	// CronSecret guards the HTTP cron endpoint. Empty means the endpoint is open,
	// matching deployments where the platform scheduler is trusted.
	CronSecret string `envconfig:"CRON_SECRET" default:""`
	// Interval enables the in-process scheduler when > 0. External schedulers
	// hitting the cron endpoint remain supported either way.
	Interval time.Duration `envconfig:"REMINDER_INTERVAL" default:"0"`
	// Lookahead bounds the candidate query window.
	Lookahead time.Duration `envconfig:"REMINDER_LOOKAHEAD" default:"26h"`
}

type BookingConfig struct {
	// CancelCutoff is how long before start a booking can still be cancelled.
	CancelCutoff time.Duration `envconfig:"BOOKING_CANCEL_CUTOFF" default:"0"`
	// AttendanceGrace extends the attendance-confirmation window past class end.
	AttendanceGrace time.Duration `envconfig:"BOOKING_ATTENDANCE_GRACE" default:"30m"`
}

type AdminConfig struct {
	// AllowedEmails elevates matching logins to admin regardless of the stored
	// role. Comparison is case-insensitive.
	AllowedEmails []string `envconfig:"ADMIN_EMAILS" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *AdminConfig) IsAllowedEmail(email string) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return false
	}
	for _, allowed := range c.AllowedEmails {
		if strings.ToLower(strings.TrimSpace(allowed)) == e {
			return true
		}
	}
	return false
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
			Port:    "8889",
			BaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 168 * time.Hour,
		},
		Booking: BookingConfig{
			AttendanceGrace: 30 * time.Minute,
		},
		Reminder: ReminderConfig{
			Lookahead: 26 * time.Hour,
		},
	}
}
