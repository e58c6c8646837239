// Package repomanager selects and owns the storage backend. The DSN scheme
// decides which repositories are handed to the services.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/secondchance/internal/server/config"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/items"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/users"
)

// Supported DSN schemes.
const (
	SchemeMongo      = "mongodb"
	SchemeMongoSRV   = "mongodb+srv"
	SchemePostgres   = "postgres"
	SchemePostgreSQL = "postgresql"
	SchemeMemory     = "memory"
)

type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository
	Close(ctx context.Context) error
}

// New connects to the backend named by cfg.DatabaseDSN and prepares its
// schema or indexes.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	u, err := url.Parse(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}

	switch u.Scheme {
	case SchemeMongo, SchemeMongoSRV:
		m, err := NewMongoRepositoryManager(ctx, cfg.DatabaseDSN, cfg.DatabaseName, cfg.ItemsCollection)
		if err != nil {
			return nil, err
		}
		return m, nil
	case SchemePostgres, SchemePostgreSQL:
		m, err := NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return m, nil
	case SchemeMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
