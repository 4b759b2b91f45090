package models

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for orders
type OrderModel struct {
	ID         int64           `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"not null;index:idx_orders_customer_id"`
	PizzaID    int64           `gorm:"not null;index:idx_orders_pizza_id"`
	Quantity   int             `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_orders_total_price,total_price > 0"`
	Status     string          `gorm:"type:varchar(20);not null;default:'Pending';index:idx_orders_status;check:chk_orders_status,status IN ('Pending','Preparing','Out for Delivery','Delivered','Cancelled')"`
	OrderDate  time.Time       `gorm:"not null;index:idx_orders_order_date"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		PizzaID:    m.PizzaID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		Status:     order.Status(m.Status),
		OrderDate:  m.OrderDate,
		CreatedAt:  m.CreatedAt,
	}
}

// OrderModelFromDomain converts a domain Order to its persistence model
func OrderModelFromDomain(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		PizzaID:    o.PizzaID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		OrderDate:  o.OrderDate,
		CreatedAt:  o.CreatedAt,
	}
}

// OrderDetailRow is the scan target of the order/customer/pizza join
type OrderDetailRow struct {
	OrderID          int64
	CustomerID       int64
	PizzaID          int64
	Quantity         int
	TotalPrice       decimal.Decimal
	Status           string
	OrderDate        time.Time
	CreatedAt        time.Time
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerAddress  string
	PizzaName        string
	PizzaDescription string
	PizzaSize        string
	UnitPrice        decimal.Decimal
}

// ToDomain converts the joined row to the order read model
func (r *OrderDetailRow) ToDomain() order.Detail {
	return order.Detail{
		Order: order.Order{
			ID:         r.OrderID,
			CustomerID: r.CustomerID,
			PizzaID:    r.PizzaID,
			Quantity:   r.Quantity,
			TotalPrice: r.TotalPrice,
			Status:     order.Status(r.Status),
			OrderDate:  r.OrderDate,
			CreatedAt:  r.CreatedAt,
		},
		Customer: order.CustomerSummary{
			Name:    r.CustomerName,
			Email:   r.CustomerEmail,
			Phone:   r.CustomerPhone,
			Address: r.CustomerAddress,
		},
		Pizza: order.PizzaSummary{
			Name:        r.PizzaName,
			Description: r.PizzaDescription,
			Size:        r.PizzaSize,
			Price:       r.UnitPrice,
		},
	}
}
