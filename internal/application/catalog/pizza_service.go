package catalog

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PizzaService manages the menu
type PizzaService struct {
	pizzas catalog.PizzaRepository
	orders order.Repository
	logger *zap.Logger
}

// NewPizzaService creates a new PizzaService. The order repository backs the
// deletion guard.
func NewPizzaService(pizzas catalog.PizzaRepository, orders order.Repository, logger *zap.Logger) *PizzaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PizzaService{
		pizzas: pizzas,
		orders: orders,
		logger: logger,
	}
}

// Create adds a pizza to the menu
func (s *PizzaService) Create(ctx context.Context, req PizzaRequest) (*PizzaResponse, error) {
	if req.Price == nil {
		return nil, shared.NewValidationError("required fields: name, price, size")
	}
	p, err := catalog.NewPizza(req.Name, req.Description, *req.Price, req.Size)
	if err != nil {
		return nil, err
	}
	if err := s.pizzas.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Pizza created", zap.Int64("pizza_id", p.ID), zap.String("name", p.Name))
	response := ToPizzaResponse(p)
	return &response, nil
}

// List returns the whole menu ordered by name and size
func (s *PizzaService) List(ctx context.Context) (*PizzaListResponse, error) {
	pizzas, err := s.pizzas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]PizzaResponse, len(pizzas))
	for i := range pizzas {
		responses[i] = ToPizzaResponse(&pizzas[i])
	}
	return &PizzaListResponse{Count: len(responses), Pizzas: responses}, nil
}

// GetByID returns one pizza
func (s *PizzaService) GetByID(ctx context.Context, id int64) (*PizzaResponse, error) {
	p, err := s.pizzas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPizzaResponse(p)
	return &response, nil
}

// Update replaces a pizza's menu fields. Existing orders keep their snapshot totals.
func (s *PizzaService) Update(ctx context.Context, id int64, req PizzaRequest) (*PizzaResponse, error) {
	if req.Price == nil {
		return nil, shared.NewValidationError("required fields: name, price, size")
	}
	p := &catalog.Pizza{ID: id}
	if err := p.Update(req.Name, req.Description, *req.Price, req.Size); err != nil {
		return nil, err
	}
	if err := s.pizzas.Update(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.pizzas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPizzaResponse(updated)
	return &response, nil
}

// Delete removes a pizza that no order references
func (s *PizzaService) Delete(ctx context.Context, id int64) error {
	inUse, err := s.orders.CountByPizza(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shared.NewConflictError("cannot delete pizza: it is referenced by existing orders")
	}

	if err := s.pizzas.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Pizza deleted", zap.Int64("pizza_id", id))
	return nil
}
