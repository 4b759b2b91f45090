package catalog

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type menuItem struct {
	name        string
	description string
	price       string
	size        catalog.Size
}

// defaultMenu is loaded into an empty pizzas table
var defaultMenu = []menuItem{
	{"Margherita", "Tomato, mozzarella and fresh basil", "12.99", catalog.SizeMedium},
	{"Pepperoni", "Tomato, mozzarella and pepperoni", "14.99", catalog.SizeMedium},
	{"Quattro Stagioni", "Artichoke, ham, mushrooms and olives", "16.99", catalog.SizeMedium},
	{"Seafood", "Shrimp, squid and mussels", "18.99", catalog.SizeMedium},
	{"Vegetarian", "Peppers, onions, mushrooms and olives", "13.99", catalog.SizeMedium},
	{"Margherita", "Tomato, mozzarella and fresh basil", "9.99", catalog.SizeSmall},
	{"Pepperoni", "Tomato, mozzarella and pepperoni", "11.99", catalog.SizeSmall},
	{"Margherita", "Tomato, mozzarella and fresh basil", "15.99", catalog.SizeLarge},
	{"Pepperoni", "Tomato, mozzarella and pepperoni", "17.99", catalog.SizeLarge},
}

// SeedMenu inserts the default menu when the pizzas table is empty.
// It returns the number of pizzas inserted; zero means the menu already existed.
func (s *PizzaService) SeedMenu(ctx context.Context) (int, error) {
	count, err := s.pizzas.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Debug("Menu already present, skipping seed", zap.Int64("pizzas", count))
		return 0, nil
	}

	pizzas := make([]*catalog.Pizza, 0, len(defaultMenu))
	for _, item := range defaultMenu {
		p, err := catalog.NewPizza(item.name, item.description, decimal.RequireFromString(item.price), item.size.String())
		if err != nil {
			return 0, err
		}
		pizzas = append(pizzas, p)
	}
	if err := s.pizzas.CreateBatch(ctx, pizzas); err != nil {
		return 0, err
	}

	s.logger.Info("Seeded default menu", zap.Int("pizzas", len(pizzas)))
	return len(pizzas), nil
}
