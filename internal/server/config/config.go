// Package config handles configuration for the server, including defaults,
// a JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Supported password hashing algorithms.
const (
	HashBcrypt   = "bcrypt"
	HashArgon2id = "argon2id"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDSN: store connection string; the scheme selects the backend
//     (mongodb://, postgres://, memory://).
//   - DatabaseName / ItemsCollection: Mongo database and item collection names.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - PasswordHashAlgorithm: "bcrypt" or "argon2id" for newly stored hashes.
//   - Environment: "production" switches logging and gin to release mode.
//   - ShutdownTimeout: upper bound for graceful HTTP shutdown.
type Config struct {
	EndpointAddrHTTP      string        `env:"ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	DatabaseName          string        `env:"DATABASE_NAME"`
	ItemsCollection       string        `env:"MONGO_COLLECTION"`
	SecretKey             string        `env:"JWT_SECRET"`
	PasswordHashAlgorithm string        `env:"PASSWORD_HASH"`
	Environment           string        `env:"APP_ENV"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3060"
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "secondChance"
	c.ItemsCollection = "secondChanceItems"
	c.SecretKey = "secretKey"
	c.PasswordHashAlgorithm = HashBcrypt
	c.Environment = "development"
	c.ShutdownTimeout = 10 * time.Second
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key must not be empty")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN must not be empty")
	}
	switch c.PasswordHashAlgorithm {
	case HashBcrypt, HashArgon2id:
	default:
		return fmt.Errorf("unknown password hash algorithm %q", c.PasswordHashAlgorithm)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
