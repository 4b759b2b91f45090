package persistence

import (
	"context"
	"testing"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/customer"
	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	"github.com/pizzeria/backend/internal/infrastructure/migration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newSQLiteDatabase opens an in-memory sqlite database with the schema applied
func newSQLiteDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      ":memory:",
		MaxOpenConns:    1,
		ConnMaxLifetime: 60,
		ConnMaxIdleTime: 30,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.SQLDB()
	require.NoError(t, err)
	require.NoError(t, migration.UpInPlace(sqlDB, config.DriverSQLite, nil))
	return db
}

func seedCustomer(t *testing.T, repo *GormCustomerRepository, name, email string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, email, "555-0100", "1 Main St")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedPizza(t *testing.T, repo *GormPizzaRepository, name, price, size string) *catalog.Pizza {
	t.Helper()
	p, err := catalog.NewPizza(name, name+" pizza", decimal.RequireFromString(price), size)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedOrder(t *testing.T, repo *GormOrderRepository, c *customer.Customer, p *catalog.Pizza, qty int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(c.ID, p.ID, qty, p.Price)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}
