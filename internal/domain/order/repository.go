package order

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// OrderRepository defines persistence operations for the order ledger.
// The ledger is authoritative for all queries; a customer's personal
// order list is FindByCustomer, never a second copy.
type OrderRepository interface {
	shared.Repository[Order]

	// FindByCustomer returns all orders owned by the customer, oldest
	// first
	FindByCustomer(ctx context.Context, customerID int64) ([]Order, error)

	// FindByStatus returns all orders in the given status, oldest first
	FindByStatus(ctx context.Context, status OrderStatus) ([]Order, error)

	// FindByCustomerAndStatus returns the customer's orders in the
	// given status, oldest first
	FindByCustomerAndStatus(ctx context.Context, customerID int64, status OrderStatus) ([]Order, error)

	// CountAll returns the total number of orders in the ledger
	CountAll(ctx context.Context) (int64, error)
}
