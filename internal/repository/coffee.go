package repository

import (
	"context"

	"coffeeapi/internal/model"
)

// CoffeeRepository is a key-addressable collection of coffees.
// No business logic here, strictly persistence operations.
type CoffeeRepository interface {
	// FindAll returns every stored coffee. Order is unspecified.
	FindAll(ctx context.Context) ([]model.Coffee, error)

	// FindByID returns the coffee stored under id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Coffee, error)

	// ExistsByID reports whether a coffee is stored under id.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Save stores c, replacing any prior record with the same ID.
	Save(ctx context.Context, c model.Coffee) (*model.Coffee, error)

	// SaveAll stores every record atomically and returns them in input order.
	SaveAll(ctx context.Context, cs []model.Coffee) ([]model.Coffee, error)

	// DeleteByID removes the record if present. Missing keys are a no-op.
	DeleteByID(ctx context.Context, id string) error
}
