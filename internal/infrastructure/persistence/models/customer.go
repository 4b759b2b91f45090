package models

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	ID        int64     `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_customers_email"`
	Phone     string    `gorm:"type:varchar(50);not null"`
	Address   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}

// CustomerModelFromDomain converts a domain Customer to its persistence model
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
