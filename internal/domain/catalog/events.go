package catalog

import (
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for the catalog context
const (
	EventProductCreated    = "catalog.product.created"
	EventProductUpdated    = "catalog.product.updated"
	EventProductDeleted    = "catalog.product.deleted"
	EventInventoryAdjusted = "catalog.product.inventory_adjusted"
	EventLowStock          = "catalog.product.low_stock"
	EventProductTagged     = "catalog.product.tagged"
	EventProductUntagged   = "catalog.product.untagged"
	EventTagCreated        = "catalog.tag.created"
	EventTagDeleted        = "catalog.tag.deleted"
)

// ProductCreatedEvent is emitted when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	Inventory int64  `json:"inventory"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductCreated, "Product", product.ID),
		Name:            product.Name,
		Inventory:       product.Inventory,
	}
}

// ProductUpdatedEvent is emitted when a product's fields are overwritten
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductUpdated, "Product", product.ID),
		Name:            product.Name,
	}
}

// ProductDeletedEvent is emitted when a product is removed from the catalog
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductDeleted, "Product", product.ID),
		Name:            product.Name,
	}
}

// InventoryAdjustedEvent is emitted when inventory changes by a delta.
// Delta is positive for restocks and negative for deductions.
type InventoryAdjustedEvent struct {
	shared.BaseDomainEvent
	Delta     int64 `json:"delta"`
	Inventory int64 `json:"inventory"`
}

// NewInventoryAdjustedEvent creates a new InventoryAdjustedEvent
func NewInventoryAdjustedEvent(product *Product, delta int64) *InventoryAdjustedEvent {
	return &InventoryAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventInventoryAdjusted, "Product", product.ID),
		Delta:           delta,
		Inventory:       product.Inventory,
	}
}

// LowStockEvent is emitted when inventory drops below the default threshold
type LowStockEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	Inventory int64  `json:"inventory"`
}

// NewLowStockEvent creates a new LowStockEvent
func NewLowStockEvent(product *Product) *LowStockEvent {
	return &LowStockEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventLowStock, "Product", product.ID),
		Name:            product.Name,
		Inventory:       product.Inventory,
	}
}

// ProductTaggedEvent is emitted when a tag is attached to a product
type ProductTaggedEvent struct {
	shared.BaseDomainEvent
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// NewProductTaggedEvent creates a new ProductTaggedEvent
func NewProductTaggedEvent(product *Product, tag *Tag) *ProductTaggedEvent {
	return &ProductTaggedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductTagged, "Product", product.ID),
		TagID:           tag.ID,
		TagName:         tag.Name,
	}
}

// ProductUntaggedEvent is emitted when a tag is detached from a product
type ProductUntaggedEvent struct {
	shared.BaseDomainEvent
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// NewProductUntaggedEvent creates a new ProductUntaggedEvent
func NewProductUntaggedEvent(product *Product, tag *Tag) *ProductUntaggedEvent {
	return &ProductUntaggedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductUntagged, "Product", product.ID),
		TagID:           tag.ID,
		TagName:         tag.Name,
	}
}

// TagCreatedEvent is emitted when a tag is created
type TagCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTagCreatedEvent creates a new TagCreatedEvent
func NewTagCreatedEvent(tag *Tag) *TagCreatedEvent {
	return &TagCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTagCreated, "Tag", tag.ID),
		Name:            tag.Name,
	}
}

// TagDeletedEvent is emitted when a tag is deleted from the catalog
type TagDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTagDeletedEvent creates a new TagDeletedEvent
func NewTagDeletedEvent(tag *Tag) *TagDeletedEvent {
	return &TagDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTagDeleted, "Tag", tag.ID),
		Name:            tag.Name,
	}
}
