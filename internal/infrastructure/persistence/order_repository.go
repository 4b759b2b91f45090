package persistence

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const entityOrder = "order"

// orderDetailColumns selects an order with its customer and pizza display fields
const orderDetailColumns = `o.order_id, o.customer_id, o.pizza_id, o.quantity, o.total_price,
	o.status, o.order_date, o.created_at,
	c.name AS customer_name, c.email AS customer_email, c.phone AS customer_phone, c.address AS customer_address,
	p.name AS pizza_name, p.description AS pizza_description, p.size AS pizza_size, p.price AS unit_price`

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order and assigns its ID
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, entityOrder, "", "insert order")
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	return nil
}

// FindByID returns the bare order
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Take(&model).Error; err != nil {
		return nil, translateError(err, entityOrder, "", "find order")
	}
	return model.ToDomain(), nil
}

// FindDetailByID returns the order joined with its display fields
func (r *GormOrderRepository) FindDetailByID(ctx context.Context, id int64) (*order.Detail, error) {
	var rows []models.OrderDetailRow
	if err := r.detailQuery(ctx).Where("o.order_id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, translateError(err, entityOrder, "", "find order")
	}
	if len(rows) == 0 {
		return nil, translateError(gorm.ErrRecordNotFound, entityOrder, "", "find order")
	}
	detail := rows[0].ToDomain()
	return &detail, nil
}

// FindAllDetails returns every order, newest order_date first
func (r *GormOrderRepository) FindAllDetails(ctx context.Context) ([]order.Detail, error) {
	return r.scanDetails(r.detailQuery(ctx), "list orders")
}

// FindDetailsByCustomer returns one customer's orders, newest order_date first
func (r *GormOrderRepository) FindDetailsByCustomer(ctx context.Context, customerID int64) ([]order.Detail, error) {
	return r.scanDetails(r.detailQuery(ctx).Where("o.customer_id = ?", customerID), "list customer orders")
}

// UpdateStatus sets only the status column
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("order_id = ?", id).
		Update("status", status.String())
	return requireRowsAffected(result, entityOrder, "update order status")
}

// Delete removes the order
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&models.OrderModel{})
	return requireRowsAffected(result, entityOrder, "delete order")
}

// CountByPizza counts orders referencing the pizza
func (r *GormOrderRepository) CountByPizza(ctx context.Context, pizzaID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("pizza_id = ?", pizzaID).
		Count(&count).Error; err != nil {
		return 0, translateError(err, entityOrder, "", "count pizza orders")
	}
	return count, nil
}

func (r *GormOrderRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders AS o").
		Select(orderDetailColumns).
		Joins("JOIN customers AS c ON c.customer_id = o.customer_id").
		Joins("JOIN pizzas AS p ON p.pizza_id = o.pizza_id")
}

func (r *GormOrderRepository) scanDetails(query *gorm.DB, op string) ([]order.Detail, error) {
	var rows []models.OrderDetailRow
	if err := query.Order("o.order_date DESC").Order("o.order_id DESC").Scan(&rows).Error; err != nil {
		return nil, translateError(err, entityOrder, "", op)
	}

	details := make([]order.Detail, len(rows))
	for i := range rows {
		details[i] = rows[i].ToDomain()
	}
	return details, nil
}

var _ order.Repository = (*GormOrderRepository)(nil)
