package roles

import (
	"context"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	apporder "github.com/retail/backend/internal/application/order"
)

// StaffOps is the capability set of a signed-in staff member: catalog
// and inventory management plus fulfilment across the whole ledger.
type StaffOps struct {
	catalog *appcatalog.ProductService
	orders  *apporder.OrderService
}

// NewStaffOps creates the staff capability set
func NewStaffOps(catalog *appcatalog.ProductService, orders *apporder.OrderService) *StaffOps {
	return &StaffOps{
		catalog: catalog,
		orders:  orders,
	}
}

// CreateProduct adds a product to the catalog
func (s *StaffOps) CreateProduct(ctx context.Context, req appcatalog.CreateProductRequest) (*appcatalog.ProductResponse, error) {
	return s.catalog.Create(ctx, req)
}

// UpdateProduct overwrites a product's fields
func (s *StaffOps) UpdateProduct(ctx context.Context, id int64, req appcatalog.UpdateProductRequest) (*appcatalog.ProductResponse, error) {
	return s.catalog.Update(ctx, id, req)
}

// DeleteProduct removes a product from the catalog
func (s *StaffOps) DeleteProduct(ctx context.Context, id int64) error {
	return s.catalog.Delete(ctx, id)
}

// Product returns a single product
func (s *StaffOps) Product(ctx context.Context, id int64) (*appcatalog.ProductResponse, error) {
	return s.catalog.Get(ctx, id)
}

// Products lists the whole catalog, availability disregarded
func (s *StaffOps) Products(ctx context.Context) ([]appcatalog.ProductResponse, error) {
	return s.catalog.List(ctx)
}

// Restock increases a product's inventory
func (s *StaffOps) Restock(ctx context.Context, id, quantity int64) error {
	return s.catalog.Restock(ctx, id, quantity)
}

// AdjustInventory applies a delta to a product's inventory
func (s *StaffOps) AdjustInventory(ctx context.Context, id, delta int64) error {
	return s.catalog.AdjustInventory(ctx, id, delta)
}

// Inventory returns a product's current inventory count
func (s *StaffOps) Inventory(ctx context.Context, id int64) (int64, error) {
	return s.catalog.Inventory(ctx, id)
}

// LowStockAlerts lists products running low. A non-positive threshold
// uses the default.
func (s *StaffOps) LowStockAlerts(ctx context.Context, threshold int64) ([]appcatalog.ProductResponse, error) {
	return s.catalog.LowStockAlerts(ctx, threshold)
}

// TagProduct attaches an existing tag to a product
func (s *StaffOps) TagProduct(ctx context.Context, productID, tagID int64) error {
	return s.catalog.TagProduct(ctx, productID, tagID)
}

// UntagProduct detaches a tag from a product
func (s *StaffOps) UntagProduct(ctx context.Context, productID, tagID int64) error {
	return s.catalog.UntagProduct(ctx, productID, tagID)
}

// PendingOrders lists all orders still open for fulfilment
func (s *StaffOps) PendingOrders(ctx context.Context) ([]apporder.OrderResponse, error) {
	return s.orders.PendingOrders(ctx)
}

// Order returns any order in the ledger
func (s *StaffOps) Order(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	return s.orders.Get(ctx, orderID)
}

// OrdersByCustomer lists any customer's orders
func (s *StaffOps) OrdersByCustomer(ctx context.Context, customerID int64) ([]apporder.OrderResponse, error) {
	return s.orders.OrdersByCustomer(ctx, customerID)
}

// SetOrderStatus assigns a fulfilment status, free-text states included
func (s *StaffOps) SetOrderStatus(ctx context.Context, orderID int64, status string) (*apporder.OrderResponse, error) {
	return s.orders.SetStatus(ctx, orderID, apporder.SetStatusRequest{Status: status})
}

// CompleteOrder settles any order in the ledger
func (s *StaffOps) CompleteOrder(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	return s.orders.Complete(ctx, orderID)
}

// CancelOrder cancels any order and returns its reserved inventory
func (s *StaffOps) CancelOrder(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	return s.orders.Cancel(ctx, orderID)
}

// ShippingDestination resolves an order's attached destination
func (s *StaffOps) ShippingDestination(ctx context.Context, orderID int64) (string, error) {
	return s.orders.ShippingDestination(ctx, orderID)
}

// PaymentSettled reports whether an order has a payment method attached
func (s *StaffOps) PaymentSettled(ctx context.Context, orderID int64) (bool, error) {
	return s.orders.PaymentSettled(ctx, orderID)
}
