package model

import "github.com/google/uuid"

// Coffee is a catalog entry. ID is the primary key in every backing store.
type Coffee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCoffee returns a Coffee with a freshly generated v4 UUID.
func NewCoffee(name string) Coffee {
	return Coffee{ID: uuid.NewString(), Name: name}
}
