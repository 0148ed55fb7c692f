package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Stripe   StripeConfig
	Auth     AuthConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StripeConfig настройки клиента платежного провайдера
type StripeConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// AuthConfig описывает заглушку аутентификации: все запросы без токена
// выполняются от имени владельца по умолчанию
type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	DefaultOwnerID    string
	DefaultOwnerEmail string
	DefaultOwnerName  string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "bizdesk"),
			Password:     getEnv("DB_PASSWORD", "bizdesk"),
			DBName:       getEnv("DB_NAME", "bizdesk"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 10),
		},
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8001"),
			ReadTimeout:     getDurationEnv("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("HTTP_WRITE_TIMEOUT", 45*time.Second),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Stripe: StripeConfig{
			APIKey:  getEnv("STRIPE_API_KEY", ""),
			BaseURL: getEnv("STRIPE_BASE_URL", "https://api.stripe.com"),
			Timeout: getDurationEnv("STRIPE_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me"),
			TokenTTL:          getDurationEnv("JWT_TTL", 168*time.Hour),
			DefaultOwnerID:    getEnv("DEFAULT_OWNER_ID", "default-user"),
			DefaultOwnerEmail: getEnv("DEFAULT_OWNER_EMAIL", "owner@example.com"),
			DefaultOwnerName:  getEnv("DEFAULT_OWNER_NAME", "Business Owner"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getDurationEnv принимает значения в формате time.ParseDuration ("30s", "5m")
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
