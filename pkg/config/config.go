package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every setting of the inventory service. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Service  ServiceConfig
	HTTP     HTTPConfig
	GRPC     GRPCConfig
	DB       DBConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Shutdown time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type ServiceConfig struct {
	Name        string `env:"OTEL_SERVICE_NAME" env-default:"inventory-service"`
	Version     string `env:"SERVICE_VERSION" env-default:"1.0.0"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
}

// IsDevelopment reports whether console logging and permissive defaults apply.
func (s ServiceConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

type HTTPConfig struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	RateLimit      string        `env:"RATE_LIMIT" env-default:"100-M"`
}

type GRPCConfig struct {
	Port string `env:"GRPC_PORT" env-default:"9090"`
}

type DBConfig struct {
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            string        `env:"DB_PORT" env-default:"5432"`
	User            string        `env:"DB_USER" env-default:"postgres"`
	Password        string        `env:"DB_PASSWORD" env-default:"postgres"`
	Name            string        `env:"DB_NAME" env-default:"inventorydb"`
	SSLMode         string        `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" env-default:"5s"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" env-default:"false"`
}

// DSN renders the libpq keyword/value connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// DevJWTSecret signs tokens when JWT_SECRET is unset in development. Any
// other environment refuses to start with it.
const DevJWTSecret = "change-me-in-production-please-32b"

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER" env-default:"inventory-service"`
	TokenTTL  time.Duration `env:"JWT_TTL" env-default:"24h"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"inventory-changes"`
	GroupID string   `env:"KAFKA_GROUP_ID" env-default:"inventory-audit"`
}

// Enabled reports whether change events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type TracingConfig struct {
	Enabled        bool   `env:"TRACING_ENABLED" env-default:"true"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT" env-default:"http://localhost:14268/api/traces"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}

	if cfg.Auth.JWTSecret == "" && cfg.Service.IsDevelopment() {
		cfg.Auth.JWTSecret = DevJWTSecret
	}
	if !cfg.Service.IsDevelopment() && (cfg.Auth.JWTSecret == "" || cfg.Auth.JWTSecret == DevJWTSecret) {
		return nil, fmt.Errorf("JWT_SECRET must be set outside development")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	return &cfg, nil
}
