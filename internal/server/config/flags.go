package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3060")
//	-d string   database DSN
//	-n string   database name
//	-i string   items collection
//	-s string   token signing secret
//	-h string   password hash algorithm (bcrypt, argon2id)
//	-e string   environment (development, production)
//	-t int      shutdown timeout, seconds
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-n", "-i", "-s", "-h", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.ItemsCollection, "i", config.ItemsCollection, "items collection")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.PasswordHashAlgorithm, "h", config.PasswordHashAlgorithm, "password hash algorithm")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
	return nil
}
