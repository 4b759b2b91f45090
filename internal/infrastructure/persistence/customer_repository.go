package persistence

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/customer"
	"github.com/pizzeria/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const (
	entityCustomer        = "customer"
	customerEmailConflict = "a customer with this email already exists"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Where("customer_id = ?", id).Take(&model).Error; err != nil {
		return nil, translateError(err, entityCustomer, "", "find customer")
	}
	return model.ToDomain(), nil
}

// FindAll returns every customer, newest first
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]customer.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("customer_id DESC").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, entityCustomer, "", "list customers")
	}

	customers := make([]customer.Customer, len(rows))
	for i := range rows {
		customers[i] = *rows[i].ToDomain()
	}
	return customers, nil
}

// Exists reports whether a customer with the given id exists
func (r *GormCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("customer_id = ?", id).
		Count(&count).Error; err != nil {
		return false, translateError(err, entityCustomer, "", "check customer")
	}
	return count > 0, nil
}

// Create inserts the customer and assigns its ID and CreatedAt
func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, entityCustomer, customerEmailConflict, "insert customer")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

// Update persists the contact fields
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("customer_id = ?", c.ID).
		Updates(map[string]any{
			"name":    c.Name,
			"email":   c.Email,
			"phone":   c.Phone,
			"address": c.Address,
		})
	if result.Error != nil {
		return translateError(result.Error, entityCustomer, customerEmailConflict, "update customer")
	}
	return requireRowsAffected(result, entityCustomer, "update customer")
}

// Delete removes the customer; orders go with it through the cascade
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&models.CustomerModel{})
	return requireRowsAffected(result, entityCustomer, "delete customer")
}

var _ customer.Repository = (*GormCustomerRepository)(nil)
