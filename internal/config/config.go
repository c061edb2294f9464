package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredential is returned by Validate when the oracle provider needs
// an API key and none is configured.
var ErrMissingCredential = errors.New("GOOGLE_API_KEY is required for the gemini provider")

const dateLayout = "2006-01-02"

type Config struct {
	App       AppConfig
	Ai        AIConfig
	RateLimit RateLimitConfig
	Coupon    CouponConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
	NatsURL            string
	RedisURL           string
	RandomSeed         int64
	SessionTTL         time.Duration
	MaxSessions        int
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	GoogleAPIKey  string
	OllamaBaseURL string
	OracleTimeout time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type CouponConfig struct {
	ExpiryStart time.Time
	ExpiryDays  int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			RandomSeed:         int64(getEnvAsInt("RANDOM_SEED", 0)),
			SessionTTL:         time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			MaxSessions:        getEnvAsInt("SESSION_MAX", 1000),
		},
		Ai: AIConfig{
			LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
			LLMModel:      getEnv("LLM_MODEL", ""),
			GoogleAPIKey:  getEnv("GOOGLE_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OracleTimeout: time.Duration(getEnvAsInt("ORACLE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 60),
			Window: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
		Coupon: CouponConfig{
			ExpiryStart: getEnvAsDate("COUPON_EXPIRY_START", time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)),
			ExpiryDays:  getEnvAsInt("COUPON_EXPIRY_DAYS", 30),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if (c.Ai.LLMProvider == "" || c.Ai.LLMProvider == "gemini") && c.Ai.GoogleAPIKey == "" {
		return ErrMissingCredential
	}
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimit.Max)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %s", c.RateLimit.Window)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDate(key string, fallback time.Time) time.Time {
	strValue := getEnv(key, "")
	if value, err := time.Parse(dateLayout, strValue); err == nil {
		return value
	}
	return fallback
}
