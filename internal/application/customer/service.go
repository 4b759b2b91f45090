package customer

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/customer"
	"go.uber.org/zap"
)

// Service manages customer records
type Service struct {
	customers customer.Repository
	logger    *zap.Logger
}

// NewService creates a new customer Service
func NewService(customers customer.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{customers: customers, logger: logger}
}

// Create registers a customer. A duplicate email is a conflict.
func (s *Service) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	c, err := customer.NewCustomer(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Customer created", zap.Int64("customer_id", c.ID))
	response := ToCustomerResponse(c)
	return &response, nil
}

// List returns all customers, newest first
func (s *Service) List(ctx context.Context) (*CustomerListResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return &CustomerListResponse{Count: len(responses), Customers: responses}, nil
}

// GetByID returns one customer
func (s *Service) GetByID(ctx context.Context, id int64) (*CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// Update replaces a customer's contact fields
func (s *Service) Update(ctx context.Context, id int64, req CustomerRequest) (*CustomerResponse, error) {
	c := &customer.Customer{ID: id}
	if err := c.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}

	updated, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(updated)
	return &response, nil
}

// Delete removes a customer together with the customer's orders
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Customer deleted", zap.Int64("customer_id", id))
	return nil
}
