package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

const (
	qSelectAll = `SELECT id, name FROM coffees`
	qSelectOne = `SELECT id, name FROM coffees WHERE id = $1`
	qExists    = `SELECT EXISTS (SELECT 1 FROM coffees WHERE id = $1)`
	qUpsert    = `
		INSERT INTO coffees (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`
	qDelete = `DELETE FROM coffees WHERE id = $1`
)

// CoffeePostgres is a PostgreSQL implementation of repository.CoffeeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CoffeePostgres struct {
	db *sql.DB
}

// NewCoffeePostgres creates a new CoffeePostgres repository.
func NewCoffeePostgres(db *sql.DB) *CoffeePostgres {
	return &CoffeePostgres{db: db}
}

var _ repository.CoffeeRepository = (*CoffeePostgres)(nil)

// FindAll returns every row of the coffees table.
func (r *CoffeePostgres) FindAll(ctx context.Context) ([]model.Coffee, error) {
	rows, err := r.db.QueryContext(ctx, qSelectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Coffee, 0)
	for rows.Next() {
		var c model.Coffee
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single coffee by its ID.
func (r *CoffeePostgres) FindByID(ctx context.Context, id string) (*model.Coffee, error) {
	var c model.Coffee
	if err := r.db.QueryRowContext(ctx, qSelectOne, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CoffeePostgres) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, qExists, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Save upserts the row keyed by c.ID and returns what the database stored.
func (r *CoffeePostgres) Save(ctx context.Context, c model.Coffee) (*model.Coffee, error) {
	var out model.Coffee
	if err := r.db.QueryRowContext(ctx, qUpsert, c.ID, c.Name).Scan(&out.ID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveAll upserts every record inside one transaction.
func (r *CoffeePostgres) SaveAll(ctx context.Context, cs []model.Coffee) ([]model.Coffee, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]model.Coffee, 0, len(cs))
	for _, c := range cs {
		var stored model.Coffee
		if err := tx.QueryRowContext(ctx, qUpsert, c.ID, c.Name).Scan(&stored.ID, &stored.Name); err != nil {
			return nil, fmt.Errorf("save %s: %w", c.ID, err)
		}
		out = append(out, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

// DeleteByID removes a coffee by ID. It does not return an error if the row does not exist.
func (r *CoffeePostgres) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, qDelete, id)
	return err
}
