package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// emailPattern accepts anything of the shape local@domain.tld without whitespace
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Customer is a person who places orders. Email is unique across all customers.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// NewCustomer creates a customer after validating its contact fields
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	c := &Customer{}
	if err := c.Update(name, email, phone, address); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces all contact fields. Every field is required.
func (c *Customer) Update(name, email, phone, address string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if name == "" || email == "" || phone == "" || address == "" {
		return shared.NewValidationError("required fields: name, email, phone, address")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(name) > 200 {
		return shared.NewValidationError("customer name cannot exceed 200 characters")
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewValidationError("email cannot exceed 200 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewValidationError("invalid email format")
	}
	return nil
}
