package catalog

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the inventory level below which a product
// appears in low-stock alerts unless the caller overrides the threshold.
const DefaultLowStockThreshold int64 = 5

// Product represents a product/SKU in the catalog.
// It is the aggregate root for product and inventory operations.
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Inventory   int64           `gorm:"not null;default:0"`
	Tags        []Tag           `gorm:"many2many:product_tags"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, inventory int64) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.InvalidInputError("Product price cannot be negative")
	}
	if inventory < 0 {
		return nil, shared.InvalidInputError("Product inventory cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		Inventory:         inventory,
		Tags:              make([]Tag, 0),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update overwrites the product's fields, including inventory.
// This is a direct set, not a delta.
func (p *Product) Update(name, description string, price decimal.Decimal, inventory int64) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.InvalidInputError("Product price cannot be negative")
	}
	if inventory < 0 {
		return shared.InvalidInputError("Product inventory cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Inventory = inventory
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// Restock increases the inventory count
func (p *Product) Restock(quantity int64) error {
	if quantity <= 0 {
		return shared.InvalidInputError("Restock quantity must be positive")
	}

	p.Inventory += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewInventoryAdjustedEvent(p, quantity))

	return nil
}

// Deduct decreases the inventory count. The check and the decrement
// form one step so inventory can never go negative through the aggregate.
// Concurrent callers must serialize through the store's guarded update.
func (p *Product) Deduct(quantity int64) error {
	if quantity <= 0 {
		return shared.InvalidInputError("Deduct quantity must be positive")
	}
	if p.Inventory < quantity {
		return shared.ErrInsufficientInventory
	}

	p.Inventory -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewInventoryAdjustedEvent(p, -quantity))

	if p.IsLowStock(DefaultLowStockThreshold) {
		p.AddDomainEvent(NewLowStockEvent(p))
	}

	return nil
}

// AddTag attaches a tag to the product. Attaching an already-attached
// tag is a no-op; the tag set never holds duplicates.
func (p *Product) AddTag(tag Tag) {
	if p.HasTag(tag.ID) {
		return
	}

	p.Tags = append(p.Tags, tag)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductTaggedEvent(p, &tag))
}

// RemoveTag detaches a tag from the product. Removing a tag that is
// not attached is a no-op.
func (p *Product) RemoveTag(tagID int64) {
	for idx := range p.Tags {
		if p.Tags[idx].ID == tagID {
			removed := p.Tags[idx]
			p.Tags = append(p.Tags[:idx], p.Tags[idx+1:]...)
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			p.AddDomainEvent(NewProductUntaggedEvent(p, &removed))
			return
		}
	}
}

// HasTag reports whether the product carries the given tag
func (p *Product) HasTag(tagID int64) bool {
	for _, t := range p.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// IsLowStock reports whether inventory is strictly below the threshold
func (p *Product) IsLowStock(threshold int64) bool {
	return p.Inventory < threshold
}

// IsAvailable reports whether the product can be purchased
func (p *Product) IsAvailable() bool {
	return p.Inventory > 0
}

func validateProductName(name string) error {
	if name == "" {
		return shared.InvalidInputError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.InvalidInputError("Product name cannot exceed 200 characters")
	}
	return nil
}
