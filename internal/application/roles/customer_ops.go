package roles

import (
	"context"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	appdelivery "github.com/retail/backend/internal/application/delivery"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
	"github.com/retail/backend/internal/domain/shared"
)

// CustomerOps is the capability set of one signed-in customer. Every
// operation is scoped to the session's customer id; orders belonging to
// someone else are rejected before any mutation.
type CustomerOps struct {
	customerID int64
	catalog    *appcatalog.ProductService
	customers  *appparty.CustomerService
	orders     *apporder.OrderService
	points     *appdelivery.DeliveryPointService
}

// NewCustomerOps creates the capability set for the given customer
func NewCustomerOps(
	customerID int64,
	catalog *appcatalog.ProductService,
	customers *appparty.CustomerService,
	orders *apporder.OrderService,
	points *appdelivery.DeliveryPointService,
) *CustomerOps {
	return &CustomerOps{
		customerID: customerID,
		catalog:    catalog,
		customers:  customers,
		orders:     orders,
		points:     points,
	}
}

// CustomerID returns the session's customer id
func (c *CustomerOps) CustomerID() int64 {
	return c.customerID
}

// Profile returns the customer's own account
func (c *CustomerOps) Profile(ctx context.Context) (*appparty.CustomerResponse, error) {
	return c.customers.Get(ctx, c.customerID)
}

// UpdateProfile updates the customer's own name, email and phone
func (c *CustomerOps) UpdateProfile(ctx context.Context, req appparty.UpdateProfileRequest) (*appparty.CustomerResponse, error) {
	return c.customers.UpdateProfile(ctx, c.customerID, req)
}

// DeleteAccount removes the customer's own account after password
// confirmation
func (c *CustomerOps) DeleteAccount(ctx context.Context, password string) error {
	return c.customers.DeleteAccount(ctx, c.customerID, password)
}

// BrowseProducts lists products currently available for purchase
func (c *CustomerOps) BrowseProducts(ctx context.Context) ([]appcatalog.ProductResponse, error) {
	return c.catalog.ListAvailable(ctx)
}

// BrowseProductsByTag lists products carrying the given tag
func (c *CustomerOps) BrowseProductsByTag(ctx context.Context, tagID int64) ([]appcatalog.ProductResponse, error) {
	return c.catalog.ProductsByTag(ctx, tagID)
}

// DeliveryPoints lists the shared pickup locations
func (c *CustomerOps) DeliveryPoints(ctx context.Context) ([]appdelivery.DeliveryPointResponse, error) {
	return c.points.List(ctx)
}

// AddAddress appends an address to the customer's own address book
func (c *CustomerOps) AddAddress(ctx context.Context, req appparty.AddressRequest) (*appparty.AddressResponse, error) {
	return c.customers.AddAddress(ctx, c.customerID, req)
}

// EditAddress updates one of the customer's own addresses
func (c *CustomerOps) EditAddress(ctx context.Context, addressID int64, req appparty.AddressRequest) error {
	return c.customers.EditAddress(ctx, c.customerID, addressID, req)
}

// RemoveAddress deletes one of the customer's own addresses
func (c *CustomerOps) RemoveAddress(ctx context.Context, addressID int64) error {
	return c.customers.RemoveAddress(ctx, c.customerID, addressID)
}

// Addresses lists the customer's own address book
func (c *CustomerOps) Addresses(ctx context.Context) ([]appparty.AddressResponse, error) {
	return c.customers.Addresses(ctx, c.customerID)
}

// AddPaymentMethod appends a payment method to the customer's own list
func (c *CustomerOps) AddPaymentMethod(ctx context.Context, req appparty.PaymentMethodRequest) (*appparty.PaymentMethodResponse, error) {
	return c.customers.AddPaymentMethod(ctx, c.customerID, req)
}

// EditPaymentMethod replaces the data of one of the customer's own
// payment methods
func (c *CustomerOps) EditPaymentMethod(ctx context.Context, paymentID int64, data string) error {
	return c.customers.EditPaymentMethod(ctx, c.customerID, paymentID, data)
}

// RemovePaymentMethod soft-deletes one of the customer's own payment
// methods
func (c *CustomerOps) RemovePaymentMethod(ctx context.Context, paymentID int64) error {
	return c.customers.RemovePaymentMethod(ctx, c.customerID, paymentID)
}

// PaymentMethods lists the customer's own payment methods
func (c *CustomerOps) PaymentMethods(ctx context.Context) ([]appparty.PaymentMethodResponse, error) {
	return c.customers.PaymentMethods(ctx, c.customerID)
}

// OpenOrder creates a new pending order for the customer
func (c *CustomerOps) OpenOrder(ctx context.Context) (*apporder.OrderResponse, error) {
	return c.orders.Create(ctx, apporder.CreateOrderRequest{CustomerID: c.customerID})
}

// AddToOrder adds a (product, quantity) line to one of the customer's
// own orders
func (c *CustomerOps) AddToOrder(ctx context.Context, orderID int64, req apporder.AddLineItemRequest) (*apporder.OrderResponse, error) {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return c.orders.AddLineItem(ctx, orderID, req)
}

// AttachAddress points one of the customer's own orders at an address
// from their own address book
func (c *CustomerOps) AttachAddress(ctx context.Context, orderID, addressID int64) error {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return err
	}
	return c.orders.AttachAddress(ctx, orderID, addressID)
}

// AttachDeliveryPoint points one of the customer's own orders at a
// shared pickup location
func (c *CustomerOps) AttachDeliveryPoint(ctx context.Context, orderID, pointID int64) error {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return err
	}
	return c.orders.AttachDeliveryPoint(ctx, orderID, pointID)
}

// AttachPaymentMethod points one of the customer's own orders at one of
// their own payment methods
func (c *CustomerOps) AttachPaymentMethod(ctx context.Context, orderID, paymentID int64) error {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return err
	}
	return c.orders.AttachPaymentMethod(ctx, orderID, paymentID)
}

// CompleteOrder settles one of the customer's own orders
func (c *CustomerOps) CompleteOrder(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return c.orders.Complete(ctx, orderID)
}

// CancelOrder cancels one of the customer's own orders and returns the
// reserved inventory to the catalog
func (c *CustomerOps) CancelOrder(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return c.orders.Cancel(ctx, orderID)
}

// Order returns one of the customer's own orders
func (c *CustomerOps) Order(ctx context.Context, orderID int64) (*apporder.OrderResponse, error) {
	if err := c.mustOwnOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return c.orders.Get(ctx, orderID)
}

// Orders returns the customer's personal order list, a projection of
// the shared ledger
func (c *CustomerOps) Orders(ctx context.Context) ([]apporder.OrderResponse, error) {
	return c.orders.OrdersByCustomer(ctx, c.customerID)
}

// PurchaseHistory returns the customer's completed orders
func (c *CustomerOps) PurchaseHistory(ctx context.Context) ([]apporder.OrderResponse, error) {
	return c.orders.CompletedOrdersByCustomer(ctx, c.customerID)
}

func (c *CustomerOps) mustOwnOrder(ctx context.Context, orderID int64) error {
	o, err := c.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != c.customerID {
		return shared.NotFoundError("Order not found")
	}
	return nil
}
