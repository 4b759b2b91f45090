package order

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/customer"
	"github.com/pizzeria/backend/internal/domain/order"
)

// TransactionScope runs a unit of work atomically. Every repository handed to fn
// shares one database transaction, committed when fn returns nil and rolled back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories bound to the current transaction
type TransactionalRepositories interface {
	Orders() order.Repository
	Customers() customer.Repository
	Pizzas() catalog.PizzaRepository
}

// NoOpTransactionScope runs the function against plain repositories without a
// transaction. Used by unit tests with in-memory or mocked repositories.
type NoOpTransactionScope struct {
	orders    order.Repository
	customers customer.Repository
	pizzas    catalog.PizzaRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(orders order.Repository, customers customer.Repository, pizzas catalog.PizzaRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orders:    orders,
		customers: customers,
		pizzas:    pizzas,
	}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() order.Repository { return s.orders }

// Customers returns the customer repository
func (s *NoOpTransactionScope) Customers() customer.Repository { return s.customers }

// Pizzas returns the pizza repository
func (s *NoOpTransactionScope) Pizzas() catalog.PizzaRepository { return s.pizzas }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
