package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

// CoffeeSQLite stores coffees in an embedded SQLite database.
type CoffeeSQLite struct {
	db *sql.DB
}

func NewCoffeeSQLite(db *sql.DB) *CoffeeSQLite {
	return &CoffeeSQLite{db: db}
}

var _ repository.CoffeeRepository = (*CoffeeSQLite)(nil)

const upsert = `INSERT INTO coffees (id, name) VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET name = excluded.name
	RETURNING id, name`

func (s *CoffeeSQLite) FindAll(ctx context.Context) ([]model.Coffee, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM coffees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Coffee, 0)
	for rows.Next() {
		var c model.Coffee
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *CoffeeSQLite) FindByID(ctx context.Context, id string) (*model.Coffee, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name FROM coffees WHERE id = ?`, id)

	var c model.Coffee
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *CoffeeSQLite) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM coffees WHERE id = ?`, id).Scan(&n)
	return n > 0, err
}

func (s *CoffeeSQLite) Save(ctx context.Context, c model.Coffee) (*model.Coffee, error) {
	var out model.Coffee
	if err := s.db.QueryRowContext(ctx, upsert, c.ID, c.Name).Scan(&out.ID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CoffeeSQLite) SaveAll(ctx context.Context, cs []model.Coffee) ([]model.Coffee, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]model.Coffee, 0, len(cs))
	for _, c := range cs {
		var stored model.Coffee
		if err := tx.QueryRowContext(ctx, upsert, c.ID, c.Name).Scan(&stored.ID, &stored.Name); err != nil {
			return nil, fmt.Errorf("save %s: %w", c.ID, err)
		}
		out = append(out, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (s *CoffeeSQLite) DeleteByID(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM coffees WHERE id = ?`, id)
	return err
}
