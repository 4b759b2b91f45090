package persistence

import (
	"context"
	"database/sql"

	apporder "github.com/pizzeria/backend/internal/application/order"
	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/customer"
	"github.com/pizzeria/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormTransactionScope implements apporder.TransactionScope with a GORM transaction
type GormTransactionScope struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewGormTransactionScope creates a scope whose transactions begin with opts.
// nil opts uses the driver default isolation.
func NewGormTransactionScope(db *gorm.DB, opts *sql.TxOptions) *GormTransactionScope {
	return &GormTransactionScope{db: db, opts: opts}
}

// Execute runs fn in one transaction. A returned error or a panic rolls it back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	run := func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	}
	if s.opts == nil {
		return s.db.WithContext(ctx).Transaction(run)
	}
	return s.db.WithContext(ctx).Transaction(run, s.opts)
}

// gormTransactionalRepositories hands out repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Orders() order.Repository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) Customers() customer.Repository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormTransactionalRepositories) Pizzas() catalog.PizzaRepository {
	return NewGormPizzaRepository(r.tx)
}

var _ apporder.TransactionScope = (*GormTransactionScope)(nil)
var _ apporder.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
