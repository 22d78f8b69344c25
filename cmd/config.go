package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

// Config carries everything the process needs to start. Values are resolved
// in three layers: .env file, environment variables, then command-line flags,
// each overriding the previous.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration
}

// LoadConfig resolves the configuration. A missing .env file is not an
// error; the JWT secret is the only value with no usable default.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	ttl, err := time.ParseDuration(envOr("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	config := Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "dispatch"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     ttl,
	}

	flag.StringVar(&config.HTTPPort, "http-port", config.HTTPPort, "HTTP listen port")
	flag.StringVar(&config.DBHost, "db-host", config.DBHost, "database host")
	flag.StringVar(&config.DBPort, "db-port", config.DBPort, "database port")
	flag.StringVar(&config.DBUser, "db-user", config.DBUser, "database user")
	flag.StringVar(&config.DBPassword, "db-password", config.DBPassword, "database password")
	flag.StringVar(&config.DBName, "db-name", config.DBName, "database name")
	flag.StringVar(&config.DBSslMode, "db-sslmode", config.DBSslMode, "database sslmode")
	flag.StringVar(&config.JWTSecret, "jwt-secret", config.JWTSecret, "JWT signing secret")
	flag.DurationVar(&config.JWTTTL, "jwt-ttl", config.JWTTTL, "JWT token lifetime")
	flag.Parse()

	if config.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
