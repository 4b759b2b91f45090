package catalog

import (
	"strings"
	"time"

	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Size is the fixed set of pizza sizes on the menu
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// sizeAliases maps the legacy single-character menu sizes onto Size values
var sizeAliases = map[string]Size{
	"小": SizeSmall,
	"中": SizeMedium,
	"大": SizeLarge,
}

// IsValid checks if the size is one of the menu sizes
func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// String returns the string representation
func (s Size) String() string {
	return string(s)
}

// AllSizes returns the menu sizes in display order
func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// ParseSize normalizes user input into a Size
func ParseSize(raw string) (Size, error) {
	raw = strings.TrimSpace(raw)
	if alias, ok := sizeAliases[raw]; ok {
		return alias, nil
	}
	s := Size(strings.ToLower(raw))
	if !s.IsValid() {
		return "", shared.NewValidationError("size must be one of: small, medium, large")
	}
	return s, nil
}

// Pizza is a menu item. Price is the current unit price; orders snapshot it at creation.
type Pizza struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Size        Size
	CreatedAt   time.Time
}

// NewPizza creates a validated menu item
func NewPizza(name, description string, price decimal.Decimal, size string) (*Pizza, error) {
	p := &Pizza{}
	if err := p.Update(name, description, price, size); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces all menu fields. Name, a positive price and a size are required.
func (p *Pizza) Update(name, description string, price decimal.Decimal, size string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(size) == "" {
		return shared.NewValidationError("required fields: name, price, size")
	}
	if len(name) > 100 {
		return shared.NewValidationError("pizza name cannot exceed 100 characters")
	}
	if !price.IsPositive() {
		return shared.NewValidationError("price must be greater than 0")
	}
	parsed, err := ParseSize(size)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.Price = price.Round(2)
	p.Size = parsed
	return nil
}
