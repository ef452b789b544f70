package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

const (
	tableCoffees = "coffees"
	indexID      = "id" // memdb requires the primary index to be named "id"
)

// Schema is the memdb layout backing CoffeeMemDB.
func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableCoffees: {
				Name: tableCoffees,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// CoffeeMemDB keeps coffees in an in-process radix-tree database.
// Readers see immutable snapshots, so it is safe for concurrent use.
type CoffeeMemDB struct {
	db *memdb.MemDB
}

// NewCoffeeMemDB creates an empty store.
func NewCoffeeMemDB() (*CoffeeMemDB, error) {
	db, err := memdb.NewMemDB(Schema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &CoffeeMemDB{db: db}, nil
}

var _ repository.CoffeeRepository = (*CoffeeMemDB)(nil)

func (r *CoffeeMemDB) FindAll(_ context.Context) ([]model.Coffee, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableCoffees, indexID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Coffee, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, *obj.(*model.Coffee))
	}
	return out, nil
}

func (r *CoffeeMemDB) FindByID(_ context.Context, id string) (*model.Coffee, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableCoffees, indexID, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, repository.ErrNotFound
	}
	c := *obj.(*model.Coffee)
	return &c, nil
}

func (r *CoffeeMemDB) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, err := r.FindByID(ctx, id)
	switch err {
	case nil:
		return true, nil
	case repository.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (r *CoffeeMemDB) Save(ctx context.Context, c model.Coffee) (*model.Coffee, error) {
	out, err := r.SaveAll(ctx, []model.Coffee{c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// SaveAll inserts every record in a single write transaction.
func (r *CoffeeMemDB) SaveAll(_ context.Context, cs []model.Coffee) ([]model.Coffee, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	out := make([]model.Coffee, 0, len(cs))
	for _, c := range cs {
		stored := c
		if err := txn.Insert(tableCoffees, &stored); err != nil {
			return nil, fmt.Errorf("save %q: %w", c.ID, err)
		}
		out = append(out, stored)
	}
	txn.Commit()
	return out, nil
}

func (r *CoffeeMemDB) DeleteByID(_ context.Context, id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableCoffees, indexID, id); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
