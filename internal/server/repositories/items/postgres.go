// Package items provides catalog item repositories over Postgres, Mongo and
// process memory.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/dbx"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

const itemColumns = `id::text, name, category, condition, posted_by, zipcode, description, image,
	date_added, age_days, age_years, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY date_added, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id::text = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateSQLError(err)
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query :=
		`INSERT INTO items (id, name, category, condition, posted_by, zipcode, description, image,
		 date_added, age_days, age_years)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 `

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.Condition, item.PostedBy, item.Zipcode, item.Description,
		item.Image, item.DateAdded, item.AgeDays, item.AgeYears)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, c models.ItemChanges) (*models.Item, error) {
	query :=
		`UPDATE items SET category = $2, condition = $3, description = $4, age_days = $5, age_years = $6,
		 updated_at = $7
		 WHERE id::text = $1
		 RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		id, c.Category, c.Condition, c.Description, c.AgeDays, c.AgeYears, c.UpdatedAt))
	if err != nil {
		return nil, translateSQLError(err)
	}
	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	item := &models.Item{}
	var updatedAt sql.NullTime

	err := s.Scan(&item.ID, &item.Name, &item.Category, &item.Condition, &item.PostedBy, &item.Zipcode,
		&item.Description, &item.Image, &item.DateAdded, &item.AgeDays, &item.AgeYears, &updatedAt)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		item.UpdatedAt = &t
	}
	return item, nil
}

func translateSQLError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
