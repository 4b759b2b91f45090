package order

import (
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeOrder identifies orders in published events
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
	EventTypeOrderDeleted       = "OrderDeleted"
)

// CreatedEvent is raised after a new order is committed
type CreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	PizzaID    int64           `json:"pizza_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewCreatedEvent creates a CreatedEvent for a persisted order
func NewCreatedEvent(o *Order) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		CustomerID:      o.CustomerID,
		PizzaID:         o.PizzaID,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
	}
}

// StatusChangedEvent is raised after an order's status is updated
type StatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   int64  `json:"order_id"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
}

// NewStatusChangedEvent creates a StatusChangedEvent
func NewStatusChangedEvent(orderID int64, oldStatus, newStatus Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, orderID),
		OrderID:         orderID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// DeletedEvent is raised after an order is deleted explicitly.
// Cascade deletes from customers or pizzas do not raise it.
type DeletedEvent struct {
	shared.BaseDomainEvent
	OrderID int64 `json:"order_id"`
}

// NewDeletedEvent creates a DeletedEvent
func NewDeletedEvent(orderID int64) *DeletedEvent {
	return &DeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDeleted, AggregateTypeOrder, orderID),
		OrderID:         orderID,
	}
}
