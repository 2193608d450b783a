package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every setting of the service. Values come from the process
// environment, optionally pre-populated from an env file.
type Config struct {
	AppHost        string `env:"APP_HOST" envDefault:"localhost"`
	AppPort        string `env:"APP_PORT" envDefault:"8080"`
	LogLevel       string `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogEncoding    string `env:"APP_LOG_ENCODING" envDefault:"json"`
	MigrationsAuto bool   `env:"MIGRATIONS_ENABLED" envDefault:"true"`

	Postgres struct {
		Host         string `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port         int    `env:"POSTGRES_PORT" envDefault:"5432"`
		User         string `env:"POSTGRES_USER" envDefault:"user"`
		Password     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
		DB           string `env:"POSTGRES_DB" envDefault:"database"`
		MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
		MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`
	}

	Redis struct {
		Host         string `env:"REDIS_HOST" envDefault:"localhost"`
		Port         int    `env:"REDIS_PORT" envDefault:"6379"`
		DB           int    `env:"REDIS_DB" envDefault:"0"`
		Password     string `env:"REDIS_PASSWORD"`
		PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
		MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	}

	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"hydroponics.measurements"`
	}

	JWT struct {
		SecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
		ExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"3600"`
	}
}

// Load reads the env file at path (a missing file is not an error) and
// parses the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	brokers := cfg.Kafka.Brokers[:0]
	for _, b := range cfg.Kafka.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	cfg.Kafka.Brokers = brokers

	return cfg, nil
}

// PostgresDSN builds the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Postgres.User, c.Postgres.Password, c.Postgres.Host, c.Postgres.Port, c.Postgres.DB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// HTTPAddr returns host:port the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
