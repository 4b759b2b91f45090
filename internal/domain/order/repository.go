package order

import "context"

// Repository defines persistence and query operations for orders
type Repository interface {
	// Create inserts the order and assigns its ID
	Create(ctx context.Context, o *Order) error

	// FindByID returns the bare order or shared.ErrNotFound
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindDetailByID returns the order joined with customer and pizza display fields
	FindDetailByID(ctx context.Context, id int64) (*Detail, error)

	// FindAllDetails returns every order joined with display fields, newest order_date first
	FindAllDetails(ctx context.Context) ([]Detail, error)

	// FindDetailsByCustomer returns one customer's orders, newest order_date first
	FindDetailsByCustomer(ctx context.Context, customerID int64) ([]Detail, error)

	// UpdateStatus sets only the status column. Returns shared.ErrNotFound when no row matched.
	UpdateStatus(ctx context.Context, id int64, status Status) error

	// Delete removes the order. Returns shared.ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// CountByPizza counts orders referencing the pizza; used by the pizza deletion guard
	CountByPizza(ctx context.Context, pizzaID int64) (int64, error)
}
