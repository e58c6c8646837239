package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/secondchance/internal/flagx"
	"github.com/dmitrijs2005/secondchance/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Only non-empty
// values override what is already in Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	DatabaseName          string         `json:"database_name"`
	ItemsCollection       string         `json:"items_collection"`
	SecretKey             string         `json:"secret_key"`
	PasswordHashAlgorithm string         `json:"password_hash_algorithm"`
	Environment           string         `json:"environment"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c / -config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setIfNotEmpty(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.DatabaseName, c.DatabaseName)
	setIfNotEmpty(&config.ItemsCollection, c.ItemsCollection)
	setIfNotEmpty(&config.SecretKey, c.SecretKey)
	setIfNotEmpty(&config.PasswordHashAlgorithm, c.PasswordHashAlgorithm)
	setIfNotEmpty(&config.Environment, c.Environment)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
