package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/secondchance/internal/server/config"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgWithDSN(dsn string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = dsn
	return cfg
}

func TestNew_Memory(t *testing.T) {
	m, err := New(context.Background(), cfgWithDSN("memory://"))
	require.NoError(t, err)

	_, ok := m.(*MemoryRepositoryManager)
	assert.True(t, ok)
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Items())
	assert.NoError(t, m.Close(context.Background()))
}

func TestNew_Postgres(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	for _, dsn := range []string{"postgres://u:p@localhost:5432/db", "postgresql://u:p@localhost:5432/db"} {
		called = false
		m, err := New(context.Background(), cfgWithDSN(dsn))
		require.NoError(t, err, dsn)
		assert.True(t, called, "schema bootstrap must run for %s", dsn)

		_, ok := m.(*PostgresRepositoryManager)
		assert.True(t, ok)
		assert.NoError(t, m.Close(context.Background()))
	}
}

func TestNew_PostgresMigrationError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	_, err := New(context.Background(), cfgWithDSN("postgres://u:p@localhost:5432/db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error: boom")
}

func TestNew_UnsupportedScheme(t *testing.T) {
	_, err := New(context.Background(), cfgWithDSN("redis://localhost:6379"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database scheme "redis"`)
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), cfgWithDSN("://bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database DSN")
}
