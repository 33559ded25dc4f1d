package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DriverMySQL is the default database driver.
	DriverMySQL = "mysql"
	// DriverPostgres selects gorm's postgres driver.
	DriverPostgres = "postgres"
	// DriverSQLite selects gorm's sqlite driver, DB_NAME is the file path.
	DriverSQLite = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env        string
	ServerPort string

	DBDriver      string
	DatabaseURL   string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        int
	DBName        string
	DBAutoMigrate bool

	SecretKey  string
	SessionTTL time.Duration

	RedisAddr string
	RedisDB   int
	RedisPass string

	InferenceBaseURL string
	InferenceAPIKey  string
	InferenceModel   string
	InferenceQAModel string
	InferenceTimeout time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	SwaggerHost string
}

// LoadDotEnv reads a .env file into the process environment when one exists.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", defaultPort))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT environment variable must be a valid integer: %w", err)
	}

	sessionTTL, err := getEnvDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	inferenceTimeout, err := getEnvDuration("INFERENCE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:        strings.ToLower(getEnv("APP_ENV", "development")),
		ServerPort: getEnv("PORT", getEnv("SERVER_PORT", "5001")),

		DBDriver:      driver,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        dbPort,
		DBName:        getEnv("DB_NAME", "philo_logic_db"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),

		SecretKey:  getEnv("SECRET_KEY", getEnv("FLASK_SECRET_KEY", "a_very_secret_key_for_development")),
		SessionTTL: sessionTTL,

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		InferenceBaseURL: strings.TrimRight(getEnv("INFERENCE_BASE_URL", "https://api-inference.huggingface.co/models"), "/"),
		InferenceAPIKey:  getEnv("INFERENCE_API_KEY", os.Getenv("HF_API_KEY")),
		InferenceModel:   getEnv("INFERENCE_MODEL", "google/flan-t5-large"),
		InferenceQAModel: getEnv("INFERENCE_QA_MODEL", "deepset/roberta-base-squad2"),
		InferenceTimeout: inferenceTimeout,

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 5),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}, nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL overrides the discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DBUser, c.DBPassword),
			Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	case DriverSQLite:
		return c.DBName
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s or 24h: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
