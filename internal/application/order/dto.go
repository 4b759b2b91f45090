package order

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/order"
)

// CreateOrderRequest is the input of CreateOrder. Fields are pointers so that an
// absent field can be told apart from a zero value.
type CreateOrderRequest struct {
	CustomerID *int64 `json:"customer_id"`
	PizzaID    *int64 `json:"pizza_id"`
	Quantity   *int   `json:"quantity"`
}

// UpdateStatusRequest is the input of UpdateStatus
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is an order joined with its customer and pizza display fields.
// Amounts always carry two decimals, whatever the store returned.
type OrderResponse struct {
	OrderID          int64           `json:"order_id"`
	CustomerID       int64           `json:"customer_id"`
	PizzaID          int64           `json:"pizza_id"`
	Quantity         int             `json:"quantity"`
	TotalPrice       string          `json:"total_price"`
	Status           string          `json:"status"`
	OrderDate        time.Time       `json:"order_date"`
	CreatedAt        time.Time       `json:"created_at"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email,omitempty"`
	CustomerPhone    string          `json:"customer_phone,omitempty"`
	CustomerAddress  string          `json:"customer_address,omitempty"`
	PizzaName        string          `json:"pizza_name"`
	PizzaDescription string          `json:"pizza_description"`
	PizzaSize        string          `json:"pizza_size"`
	UnitPrice        string          `json:"unit_price"`
}

// OrderListResponse is the body of the list endpoint
type OrderListResponse struct {
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

// CustomerOrdersResponse is the body of the by-customer endpoint
type CustomerOrdersResponse struct {
	CustomerID int64           `json:"customer_id"`
	Count      int             `json:"count"`
	Orders     []OrderResponse `json:"orders"`
}

// ToOrderResponse converts the read model to a response DTO
func ToOrderResponse(d *order.Detail) OrderResponse {
	return OrderResponse{
		OrderID:          d.ID,
		CustomerID:       d.CustomerID,
		PizzaID:          d.PizzaID,
		Quantity:         d.Quantity,
		TotalPrice:       d.TotalPrice.StringFixed(2),
		Status:           d.Status.String(),
		OrderDate:        d.OrderDate,
		CreatedAt:        d.CreatedAt,
		CustomerName:     d.Customer.Name,
		CustomerEmail:    d.Customer.Email,
		CustomerPhone:    d.Customer.Phone,
		CustomerAddress:  d.Customer.Address,
		PizzaName:        d.Pizza.Name,
		PizzaDescription: d.Pizza.Description,
		PizzaSize:        d.Pizza.Size,
		UnitPrice:        d.Pizza.Price.StringFixed(2),
	}
}

// ToOrderResponses converts a slice of read models
func ToOrderResponses(details []order.Detail) []OrderResponse {
	responses := make([]OrderResponse, len(details))
	for i := range details {
		responses[i] = ToOrderResponse(&details[i])
	}
	return responses
}
