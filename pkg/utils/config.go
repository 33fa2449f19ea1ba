package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Square     SquareConfig
	BookingAPI BookingAPIConfig
	Notify     NotifyConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
}

type AppConfig struct {
	Name             string
	Port             string
	Debug            bool
	LogPath          string
	BusinessTimezone string
	ShutdownTimeout  time.Duration
	NotifyTimeout    time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	AvailabilityTTL time.Duration
	IdempotencyTTL  time.Duration
}

type SquareConfig struct {
	AccessToken string
	LocationID  string
	Environment string
	BaseURL     string
	Currency    string
	Timeout     time.Duration
}

// BookingAPIConfig points checkout at a remote booking endpoint. An empty
// URL keeps booking creation in process.
type BookingAPIConfig struct {
	URL     string
	Timeout time.Duration
}

type NotifyConfig struct {
	Driver       string
	EmailAPIURL  string
	EmailPath    string
	Timeout      time.Duration
	KafkaBrokers []string
	KafkaTopic   string
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "artstudio-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("NOTIFY_TIMEOUT", "10s")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL", "30s")
	viper.SetDefault("IDEMPOTENCY_TTL", "24h")

	viper.SetDefault("SQUARE_ENVIRONMENT", "sandbox")
	viper.SetDefault("SQUARE_CURRENCY", "USD")
	viper.SetDefault("SQUARE_TIMEOUT", "10s")

	viper.SetDefault("BOOKING_API_TIMEOUT", "10s")

	viper.SetDefault("NOTIFY_DRIVER", "none")
	viper.SetDefault("EMAIL_API_PATH", "/api/send-confirmation-email")
	viper.SetDefault("EMAIL_API_TIMEOUT", "10s")
	viper.SetDefault("KAFKA_TOPIC", "booking-confirmations")

	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 3)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	config := &Config{
		App: AppConfig{
			Name:             viper.GetString("APP_NAME"),
			Port:             viper.GetString("PORT"),
			Debug:            viper.GetBool("DEBUG"),
			LogPath:          viper.GetString("LOG_PATH"),
			BusinessTimezone: viper.GetString("BUSINESS_TIMEZONE"),
			ShutdownTimeout:  viper.GetDuration("SHUTDOWN_TIMEOUT"),
			NotifyTimeout:    viper.GetDuration("NOTIFY_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASSWORD"),
			DB:              viper.GetInt("REDIS_DB"),
			AvailabilityTTL: viper.GetDuration("AVAILABILITY_CACHE_TTL"),
			IdempotencyTTL:  viper.GetDuration("IDEMPOTENCY_TTL"),
		},
		Square: SquareConfig{
			AccessToken: viper.GetString("SQUARE_ACCESS_TOKEN"),
			LocationID:  viper.GetString("SQUARE_LOCATION_ID"),
			Environment: viper.GetString("SQUARE_ENVIRONMENT"),
			BaseURL:     viper.GetString("SQUARE_BASE_URL"),
			Currency:    viper.GetString("SQUARE_CURRENCY"),
			Timeout:     viper.GetDuration("SQUARE_TIMEOUT"),
		},
		BookingAPI: BookingAPIConfig{
			URL:     viper.GetString("BOOKING_API_URL"),
			Timeout: viper.GetDuration("BOOKING_API_TIMEOUT"),
		},
		Notify: NotifyConfig{
			Driver:       strings.ToLower(viper.GetString("NOTIFY_DRIVER")),
			EmailAPIURL:  viper.GetString("EMAIL_API_URL"),
			EmailPath:    viper.GetString("EMAIL_API_PATH"),
			Timeout:      viper.GetDuration("EMAIL_API_TIMEOUT"),
			KafkaBrokers: splitList(viper.GetString("KAFKA_BROKERS")),
			KafkaTopic:   viper.GetString("KAFKA_TOPIC"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
