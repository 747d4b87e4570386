package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// insecureDefaultSecret is used when JWT_SECRET is unset. Tokens signed with
// it are forgeable by anyone who reads this file; LoadConfig flags the
// fallback so main can log it loudly.
const insecureDefaultSecret = "devsecret"

// Config is built once in main and passed by reference into everything.
// Nothing reads environment variables after startup.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	InsecureSecret bool
	TokenTTL       time.Duration
	BcryptCost     int
	RequestTimeout time.Duration
	Environment    string
	LogLevel       string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnvWithDefault("MONGODB_DATABASE", "movieverse"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureDefaultSecret
		cfg.InsecureSecret = true
	}

	ttlHours, err := getEnvInt("TOKEN_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	timeoutSec, err := getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %v", key, err)
	}
	return n, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
