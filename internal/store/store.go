// Package store provides the product catalog storage.
package store

import "errors"

var (
	// ErrNotFound is returned when no product exists with the requested ID.
	ErrNotFound = errors.New("product not found")

	// ErrDuplicateName is returned when a write would give two live products
	// the same name after trimming and case folding.
	ErrDuplicateName = errors.New("product name already exists")
)

// Product represents a product entity in the store.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Update carries a partial product mutation. Nil fields are left untouched.
type Update struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// List returns all products in insertion order.
	List() []Product

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrNotFound if no product exists with the given ID.
	FindByID(id int) (*Product, error)

	// IndexByID returns the insertion-order position of a product.
	// Returns ErrNotFound if no product exists with the given ID.
	IndexByID(id int) (int, error)

	// Create assigns the next unused ID, appends the product and returns it.
	// Returns ErrDuplicateName if a live product already carries the name.
	Create(p Product) (*Product, error)

	// Update mutates only the fields present in upd.
	// Returns ErrNotFound or ErrDuplicateName.
	Update(id int, upd Update) (*Product, error)

	// DeleteByID removes a product and returns the removed record.
	// The ID is never reassigned to a later product.
	// Returns ErrNotFound if no product exists with the given ID.
	DeleteByID(id int) (*Product, error)
}
