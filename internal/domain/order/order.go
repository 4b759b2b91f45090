package order

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order links a customer to a pizza. TotalPrice is fixed at creation from the
// pizza's price at that moment and never recomputed.
type Order struct {
	ID         int64
	CustomerID int64
	PizzaID    int64
	Quantity   int
	TotalPrice decimal.Decimal
	Status     Status
	OrderDate  time.Time
	CreatedAt  time.Time
}

// NewOrder prices a new pending order. unitPrice is the pizza's current price.
func NewOrder(customerID, pizzaID int64, quantity int, unitPrice decimal.Decimal) (*Order, error) {
	if quantity <= 0 {
		return nil, shared.NewValidationError("quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewValidationError("pizza price must be positive")
	}

	now := time.Now()
	return &Order{
		CustomerID: customerID,
		PizzaID:    pizzaID,
		Quantity:   quantity,
		TotalPrice: CalculateTotal(unitPrice, quantity),
		Status:     StatusPending,
		OrderDate:  now,
		CreatedAt:  now,
	}, nil
}

// CalculateTotal multiplies the unit price by the quantity, rounded to cents
func CalculateTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// ChangeStatus moves the order to target if the policy allows it
func (o *Order) ChangeStatus(target Status, policy TransitionPolicy) error {
	if !target.IsValid() {
		return shared.NewValidationError("invalid status: " + target.String())
	}
	if policy == nil {
		policy = AnyTransition{}
	}
	if !policy.Allow(o.Status, target) {
		return shared.NewValidationError("invalid status transition from " + o.Status.String() + " to " + target.String())
	}
	o.Status = target
	return nil
}

// CustomerSummary holds the customer fields shown alongside an order
type CustomerSummary struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// PizzaSummary holds the pizza fields shown alongside an order
type PizzaSummary struct {
	Name        string
	Description string
	Size        string
	Price       decimal.Decimal
}

// Detail is the read model returned by queries: the order joined with
// display fields of its customer and pizza.
type Detail struct {
	Order
	Customer CustomerSummary
	Pizza    PizzaSummary
}
