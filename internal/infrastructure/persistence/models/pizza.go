package models

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// PizzaModel is the persistence model for menu items
type PizzaModel struct {
	ID          int64           `gorm:"column:pizza_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_pizzas_price,price > 0"`
	Size        string          `gorm:"type:varchar(10);not null;check:chk_pizzas_size,size IN ('small','medium','large')"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime"`
}

// TableName returns the table name for GORM
func (PizzaModel) TableName() string {
	return "pizzas"
}

// ToDomain converts the persistence model to a domain Pizza
func (m *PizzaModel) ToDomain() *catalog.Pizza {
	return &catalog.Pizza{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Size:        catalog.Size(m.Size),
		CreatedAt:   m.CreatedAt,
	}
}

// PizzaModelFromDomain converts a domain Pizza to its persistence model
func PizzaModelFromDomain(p *catalog.Pizza) *PizzaModel {
	return &PizzaModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Size:        p.Size.String(),
		CreatedAt:   p.CreatedAt,
	}
}
