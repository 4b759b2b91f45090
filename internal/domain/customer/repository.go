package customer

import "context"

// Repository defines persistence operations for customers
type Repository interface {
	// FindByID returns shared.ErrNotFound when no customer has the given id
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// FindAll returns every customer, newest first
	FindAll(ctx context.Context) ([]Customer, error)

	// Exists reports whether a customer with the given id exists
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts the customer and assigns its ID and CreatedAt.
	// A duplicate email yields a conflict error.
	Create(ctx context.Context, c *Customer) error

	// Update persists changed contact fields. Returns shared.ErrNotFound when no row matched.
	Update(ctx context.Context, c *Customer) error

	// Delete removes the customer; the store cascades the delete to its orders.
	// Returns shared.ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
