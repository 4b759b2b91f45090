package persistence

import (
	"context"
	"testing"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPizzaRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t)
	repo := NewGormPizzaRepository(db.DB)

	t.Run("count of empty menu", func(t *testing.T) {
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	margherita := seedPizza(t, repo, "Margherita", "12.99", "medium")

	t.Run("price round trips exactly", func(t *testing.T) {
		found, err := repo.FindByID(ctx, margherita.ID)
		require.NoError(t, err)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("12.99")), found.Price.String())
		assert.Equal(t, catalog.SizeMedium, found.Size)
	})

	t.Run("batch insert assigns ids", func(t *testing.T) {
		small, err := catalog.NewPizza("Margherita", "", decimal.RequireFromString("9.99"), "small")
		require.NoError(t, err)
		pepperoni, err := catalog.NewPizza("Pepperoni", "", decimal.RequireFromString("14.99"), "medium")
		require.NoError(t, err)

		require.NoError(t, repo.CreateBatch(ctx, []*catalog.Pizza{small, pepperoni}))
		assert.NotZero(t, small.ID)
		assert.NotZero(t, pepperoni.ID)
		assert.NotEqual(t, small.ID, pepperoni.ID)
	})

	t.Run("list ordered by name then size", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Margherita", all[0].Name)
		assert.Equal(t, catalog.SizeMedium, all[0].Size)
		assert.Equal(t, catalog.SizeSmall, all[1].Size)
		assert.Equal(t, "Pepperoni", all[2].Name)
	})

	t.Run("update and not found", func(t *testing.T) {
		changed := &catalog.Pizza{ID: margherita.ID}
		require.NoError(t, changed.Update("Margherita", "Basil", decimal.RequireFromString("13.49"), "medium"))
		require.NoError(t, repo.Update(ctx, changed))

		found, err := repo.FindByID(ctx, margherita.ID)
		require.NoError(t, err)
		assert.Equal(t, "13.49", found.Price.StringFixed(2))

		changed.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, changed), shared.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, margherita.ID))
		_, err := repo.FindByID(ctx, margherita.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, margherita.ID), shared.ErrNotFound)
	})
}
