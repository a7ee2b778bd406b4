package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Backends BackendsConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// AuthConfig defines token verification parameters and the external
// auth service location.
type AuthConfig struct {
	JWTSecret             string
	ServiceBaseURL        string
	ServiceTimeoutSeconds int
}

// CacheConfig holds token validity cache policy.
type CacheConfig struct {
	// Backend selects the cache implementation: "memory" or "redis".
	Backend         string
	PositiveTTLSecs int
	NegativeTTLSecs int
}

// RedisConfig holds Redis connection values for the shared cache backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BackendsConfig holds the RPC base URLs of the downstream services.
type BackendsConfig struct {
	ClientsURL   string
	InventoryURL string
	OrdersURL    string
	ProductsURL  string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "censudex-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			ServiceBaseURL:        getEnv("AUTH_SERVICE_URL", "http://localhost:5001"),
			ServiceTimeoutSeconds: getEnvAsInt("AUTH_SERVICE_TIMEOUT_SECONDS", 30),
		},
		Cache: CacheConfig{
			Backend:         getEnv("TOKEN_CACHE_BACKEND", "memory"),
			PositiveTTLSecs: getEnvAsInt("TOKEN_CACHE_POSITIVE_TTL_SECONDS", 10),
			NegativeTTLSecs: getEnvAsInt("TOKEN_CACHE_NEGATIVE_TTL_SECONDS", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Backends: BackendsConfig{
			ClientsURL:   getEnv("CLIENTS_SERVICE_URL", "http://localhost:5253"),
			InventoryURL: getEnv("INVENTORY_SERVICE_URL", "http://localhost:5254"),
			OrdersURL:    getEnv("ORDERS_SERVICE_URL", "http://localhost:5255"),
			ProductsURL:  getEnv("PRODUCTS_SERVICE_URL", "http://localhost:5256"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ServiceTimeout returns the credential validation call budget.
func (a AuthConfig) ServiceTimeout() time.Duration {
	if a.ServiceTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.ServiceTimeoutSeconds) * time.Second
}

// PositiveTTL bounds how long a confirmed-valid token skips revalidation.
func (c CacheConfig) PositiveTTL() time.Duration {
	if c.PositiveTTLSecs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.PositiveTTLSecs) * time.Second
}

// NegativeTTL bounds how long a rejected token keeps being rejected
// without asking the auth service again.
func (c CacheConfig) NegativeTTL() time.Duration {
	if c.NegativeTTLSecs <= 0 {
		return time.Minute
	}
	return time.Duration(c.NegativeTTLSecs) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
