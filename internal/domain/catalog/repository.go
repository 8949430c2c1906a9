package catalog

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindByTag returns all products carrying the given tag, in catalog order
	FindByTag(ctx context.Context, tagID int64, filter shared.Filter) ([]Product, error)

	// FindLowStock returns products whose inventory is strictly below
	// the threshold, in catalog order
	FindLowStock(ctx context.Context, threshold int64) ([]Product, error)

	// FindAvailable returns products with inventory greater than zero
	FindAvailable(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Reserve atomically decrements the product's inventory by quantity.
	// The check and the decrement execute as one guarded update: if the
	// current inventory is lower than quantity, nothing changes and
	// ErrInsufficientInventory is returned. Returns ErrNotFound if the
	// product does not exist.
	Reserve(ctx context.Context, productID, quantity int64) error

	// Release atomically increments the product's inventory by quantity
	// (used when a reservation is undone, e.g. on order cancellation).
	Release(ctx context.Context, productID, quantity int64) error

	// AdjustInventory atomically applies a delta to the inventory.
	// A negative delta that would take inventory below zero fails with
	// ErrInsufficientInventory and leaves the count unchanged.
	AdjustInventory(ctx context.Context, productID, delta int64) error

	// ReplaceTags replaces the product's tag associations
	ReplaceTags(ctx context.Context, product *Product) error
}

// TagRepository defines persistence operations for tags
type TagRepository interface {
	shared.Repository[Tag]

	// FindByName returns the tag with the exact (case-sensitive) name
	FindByName(ctx context.Context, name string) (*Tag, error)

	// DeleteCascading removes the tag and detaches it from every product
	// that references it, in one transaction
	DeleteCascading(ctx context.Context, id int64) error
}
