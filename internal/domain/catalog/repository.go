package catalog

import "context"

// PizzaRepository defines persistence operations for the menu
type PizzaRepository interface {
	// FindByID returns shared.ErrNotFound when no pizza has the given id
	FindByID(ctx context.Context, id int64) (*Pizza, error)

	// FindAll returns the menu ordered by name, then size
	FindAll(ctx context.Context) ([]Pizza, error)

	// Count returns the number of pizzas on the menu
	Count(ctx context.Context) (int64, error)

	// Create inserts the pizza and assigns its ID and CreatedAt
	Create(ctx context.Context, p *Pizza) error

	// CreateBatch inserts several pizzas in one statement
	CreateBatch(ctx context.Context, pizzas []*Pizza) error

	// Update persists changed menu fields. Returns shared.ErrNotFound when no row matched.
	Update(ctx context.Context, p *Pizza) error

	// Delete removes the pizza. Returns shared.ErrNotFound when no row matched.
	// Callers must check that no order references it first.
	Delete(ctx context.Context, id int64) error
}
