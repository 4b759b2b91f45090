package catalog

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// PizzaRequest is the body for creating or replacing a pizza
type PizzaRequest struct {
	Name        string           `json:"name" binding:"max=100"`
	Description string           `json:"description" binding:"max=500"`
	Price       *decimal.Decimal `json:"price"`
	Size        string           `json:"size"`
}

// PizzaResponse represents a pizza in API responses. Price has two decimals.
type PizzaResponse struct {
	PizzaID     int64           `json:"pizza_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	Size        string          `json:"size"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PizzaListResponse is the body of the list endpoint
type PizzaListResponse struct {
	Count  int             `json:"count"`
	Pizzas []PizzaResponse `json:"pizzas"`
}

// ToPizzaResponse converts a domain pizza to a response DTO
func ToPizzaResponse(p *catalog.Pizza) PizzaResponse {
	return PizzaResponse{
		PizzaID:     p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Size:        p.Size.String(),
		CreatedAt:   p.CreatedAt,
	}
}
