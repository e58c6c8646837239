// Package users provides account repositories over Postgres, Mongo and
// process memory.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/dbx"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO users (email, first_name, last_name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id::text
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.FirstName, account.LastName, account.PasswordHash, account.CreatedAt).Scan(&account.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id::text, email, first_name, last_name, password_hash, created_at, updated_at FROM users
		 WHERE email = $1
		 `

	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) UpdateFirstNameByEmail(ctx context.Context, email, firstName string, updatedAt time.Time) (*models.Account, error) {
	query :=
		`UPDATE users SET first_name = $2, updated_at = $3
		 WHERE email = $1
		 RETURNING id::text, email, first_name, last_name, password_hash, created_at, updated_at
		 `

	return scanAccount(r.db.QueryRowContext(ctx, query, email, firstName, updatedAt))
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var updatedAt sql.NullTime

	err := row.Scan(&account.ID, &account.Email, &account.FirstName, &account.LastName,
		&account.PasswordHash, &account.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		account.UpdatedAt = &t
	}

	return account, nil
}
