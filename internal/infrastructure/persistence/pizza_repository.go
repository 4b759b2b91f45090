package persistence

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const entityPizza = "pizza"

// GormPizzaRepository implements catalog.PizzaRepository using GORM
type GormPizzaRepository struct {
	db *gorm.DB
}

// NewGormPizzaRepository creates a new GormPizzaRepository
func NewGormPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

// FindByID finds a pizza by its ID
func (r *GormPizzaRepository) FindByID(ctx context.Context, id int64) (*catalog.Pizza, error) {
	var model models.PizzaModel
	if err := r.db.WithContext(ctx).Where("pizza_id = ?", id).Take(&model).Error; err != nil {
		return nil, translateError(err, entityPizza, "", "find pizza")
	}
	return model.ToDomain(), nil
}

// FindAll returns the menu ordered by name, then size
func (r *GormPizzaRepository) FindAll(ctx context.Context) ([]catalog.Pizza, error) {
	var rows []models.PizzaModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").Order("size ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, entityPizza, "", "list pizzas")
	}

	pizzas := make([]catalog.Pizza, len(rows))
	for i := range rows {
		pizzas[i] = *rows[i].ToDomain()
	}
	return pizzas, nil
}

// Count returns the number of pizzas on the menu
func (r *GormPizzaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PizzaModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, entityPizza, "", "count pizzas")
	}
	return count, nil
}

// Create inserts the pizza and assigns its ID and CreatedAt
func (r *GormPizzaRepository) Create(ctx context.Context, p *catalog.Pizza) error {
	model := models.PizzaModelFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, entityPizza, "", "insert pizza")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	return nil
}

// CreateBatch inserts several pizzas in one statement
func (r *GormPizzaRepository) CreateBatch(ctx context.Context, pizzas []*catalog.Pizza) error {
	if len(pizzas) == 0 {
		return nil
	}
	rows := make([]*models.PizzaModel, len(pizzas))
	for i, p := range pizzas {
		rows[i] = models.PizzaModelFromDomain(p)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return translateError(err, entityPizza, "", "insert pizzas")
	}
	for i, p := range pizzas {
		p.ID = rows[i].ID
		p.CreatedAt = rows[i].CreatedAt
	}
	return nil
}

// Update persists the menu fields
func (r *GormPizzaRepository) Update(ctx context.Context, p *catalog.Pizza) error {
	result := r.db.WithContext(ctx).Model(&models.PizzaModel{}).
		Where("pizza_id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"size":        p.Size.String(),
		})
	return requireRowsAffected(result, entityPizza, "update pizza")
}

// Delete removes the pizza
func (r *GormPizzaRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("pizza_id = ?", id).Delete(&models.PizzaModel{})
	return requireRowsAffected(result, entityPizza, "delete pizza")
}

var _ catalog.PizzaRepository = (*GormPizzaRepository)(nil)
