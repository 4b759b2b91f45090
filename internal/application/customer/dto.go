package customer

import (
	"time"

	"github.com/pizzeria/backend/internal/domain/customer"
)

// CustomerRequest is the body for creating or replacing a customer
type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	CustomerID int64     `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerListResponse is the body of the list endpoint
type CustomerListResponse struct {
	Count     int                `json:"count"`
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}
