package roles

import (
	"context"
	"testing"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	appdelivery "github.com/retail/backend/internal/application/delivery"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	products  *memProductRepo
	tags      *memTagRepo
	customers *memCustomerRepo
	employees *memEmployeeRepo
	points    *memDeliveryPointRepo
	orders    *memOrderRepo

	catalogSvc  *appcatalog.ProductService
	tagSvc      *appcatalog.TagService
	customerSvc *appparty.CustomerService
	employeeSvc *appparty.EmployeeService
	orderSvc    *apporder.OrderService
	pointSvc    *appdelivery.DeliveryPointService

	staff *StaffOps
	admin *AdminOps
}

func newWorld() *world {
	products := newMemProductRepo()
	tags := newMemTagRepo(products)
	customers := newMemCustomerRepo()
	employees := newMemEmployeeRepo()
	points := newMemDeliveryPointRepo()
	orders := newMemOrderRepo()

	catalogSvc := appcatalog.NewProductService(products, tags)
	tagSvc := appcatalog.NewTagService(tags)
	customerSvc := appparty.NewCustomerService(customers)
	employeeSvc := appparty.NewEmployeeService(employees)
	pointSvc := appdelivery.NewDeliveryPointService(points)
	scope := apporder.NewNoOpTransactionScope(orders, products)
	orderSvc := apporder.NewOrderService(scope, orders, customers, points)

	staff := NewStaffOps(catalogSvc, orderSvc)
	admin := NewAdminOps(staff, tagSvc, customerSvc, employeeSvc, pointSvc)

	return &world{
		products:    products,
		tags:        tags,
		customers:   customers,
		employees:   employees,
		points:      points,
		orders:      orders,
		catalogSvc:  catalogSvc,
		tagSvc:      tagSvc,
		customerSvc: customerSvc,
		employeeSvc: employeeSvc,
		orderSvc:    orderSvc,
		pointSvc:    pointSvc,
		staff:       staff,
		admin:       admin,
	}
}

func (w *world) signUpCustomer(t *testing.T, username string) *CustomerOps {
	t.Helper()
	account, err := w.customerSvc.Register(context.Background(), appparty.RegisterCustomerRequest{
		Name:     "Customer " + username,
		Username: username,
		Email:    username + "@example.com",
		Phone:    "555-0100",
		Password: "secret1",
	})
	require.NoError(t, err)
	return NewCustomerOps(account.ID, w.catalogSvc, w.customerSvc, w.orderSvc, w.pointSvc)
}

func TestRoles_PurchaseRoundTrip(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	product, err := w.staff.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:      "Keyboard",
		Price:     decimal.NewFromInt(50),
		Inventory: 10,
	})
	require.NoError(t, err)

	customer := w.signUpCustomer(t, "ada")

	o, err := customer.OpenOrder(ctx)
	require.NoError(t, err)

	o, err = customer.AddToOrder(ctx, o.ID, apporder.AddLineItemRequest{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.TotalQuantity)

	left, err := w.staff.Inventory(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), left)

	addr, err := customer.AddAddress(ctx, appparty.AddressRequest{Street: "12 Main St", City: "Springfield"})
	require.NoError(t, err)
	require.NoError(t, customer.AttachAddress(ctx, o.ID, addr.ID))

	payment, err := customer.AddPaymentMethod(ctx, appparty.PaymentMethodRequest{Type: "card", Data: "tok_visa"})
	require.NoError(t, err)
	require.NoError(t, customer.AttachPaymentMethod(ctx, o.ID, payment.ID))

	settled, err := w.staff.PaymentSettled(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, settled)

	o, err = customer.CompleteOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", o.Status)

	// Terminal orders take no further transitions
	_, err = w.staff.SetOrderStatus(ctx, o.ID, "Shipped")
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestRoles_CustomerCannotTouchForeignOrder(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	product, err := w.staff.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:      "Mouse",
		Price:     decimal.NewFromInt(20),
		Inventory: 5,
	})
	require.NoError(t, err)

	ada := w.signUpCustomer(t, "ada")
	eve := w.signUpCustomer(t, "eve")

	o, err := ada.OpenOrder(ctx)
	require.NoError(t, err)

	_, err = eve.AddToOrder(ctx, o.ID, apporder.AddLineItemRequest{ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = eve.CancelOrder(ctx, o.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	left, err := w.staff.Inventory(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), left)
}

func TestRoles_CancelRestoresInventory(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	product, err := w.staff.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:      "Monitor",
		Price:     decimal.NewFromInt(150),
		Inventory: 4,
	})
	require.NoError(t, err)

	ada := w.signUpCustomer(t, "ada")
	o, err := ada.OpenOrder(ctx)
	require.NoError(t, err)
	_, err = ada.AddToOrder(ctx, o.ID, apporder.AddLineItemRequest{ProductID: product.ID, Quantity: 4})
	require.NoError(t, err)

	left, err := w.staff.Inventory(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)

	_, err = ada.CancelOrder(ctx, o.ID)
	require.NoError(t, err)

	left, err = w.staff.Inventory(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), left)
}

func TestRoles_LedgerAndPersonalListAgree(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	ada := w.signUpCustomer(t, "ada")
	eve := w.signUpCustomer(t, "eve")

	first, err := ada.OpenOrder(ctx)
	require.NoError(t, err)
	_, err = eve.OpenOrder(ctx)
	require.NoError(t, err)
	second, err := ada.OpenOrder(ctx)
	require.NoError(t, err)

	total, err := w.admin.OrderCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	mine, err := ada.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, second.ID, mine[1].ID)
}

func TestRoles_RemovedAddressSurfacesOnShippingLookup(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	ada := w.signUpCustomer(t, "ada")

	addr, err := ada.AddAddress(ctx, appparty.AddressRequest{Street: "12 Main St", City: "Springfield"})
	require.NoError(t, err)

	o, err := ada.OpenOrder(ctx)
	require.NoError(t, err)
	require.NoError(t, ada.AttachAddress(ctx, o.ID, addr.ID))

	destination, err := w.staff.ShippingDestination(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Main St, Springfield", destination)

	// Removing the address keeps the order but its destination lookup
	// now reports the gap instead of resolving silently
	require.NoError(t, ada.RemoveAddress(ctx, addr.ID))

	_, err = w.staff.ShippingDestination(ctx, o.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	reloaded, err := ada.Order(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", reloaded.Status)
}

func TestRoles_PurchaseHistoryOnlyListsCompletedOrders(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	product, err := w.staff.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:      "Keyboard",
		Price:     decimal.NewFromInt(50),
		Inventory: 10,
	})
	require.NoError(t, err)

	ada := w.signUpCustomer(t, "ada")
	eve := w.signUpCustomer(t, "eve")

	settled, err := ada.OpenOrder(ctx)
	require.NoError(t, err)
	_, err = ada.AddToOrder(ctx, settled.ID, apporder.AddLineItemRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = ada.CompleteOrder(ctx, settled.ID)
	require.NoError(t, err)

	open, err := ada.OpenOrder(ctx)
	require.NoError(t, err)

	foreign, err := eve.OpenOrder(ctx)
	require.NoError(t, err)
	_, err = eve.AddToOrder(ctx, foreign.ID, apporder.AddLineItemRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = eve.CompleteOrder(ctx, foreign.ID)
	require.NoError(t, err)

	history, err := ada.PurchaseHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, settled.ID, history[0].ID)
	assert.Equal(t, "Completed", history[0].Status)

	mine, err := ada.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, settled.ID, mine[0].ID)
	assert.Equal(t, open.ID, mine[1].ID)
}

func TestRoles_AdminTagLifecycle(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	product, err := w.staff.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:      "Keyboard",
		Price:     decimal.NewFromInt(50),
		Inventory: 10,
	})
	require.NoError(t, err)

	tag, err := w.admin.CreateTag(ctx, appcatalog.CreateTagRequest{Name: "electronics"})
	require.NoError(t, err)

	_, err = w.admin.CreateTag(ctx, appcatalog.CreateTagRequest{Name: "electronics"})
	assert.ErrorIs(t, err, shared.ErrDuplicateName)

	all, err := w.admin.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, w.staff.TagProduct(ctx, product.ID, tag.ID))

	tagged, err := w.staff.Products(ctx)
	require.NoError(t, err)
	require.Len(t, tagged[0].Tags, 1)

	// Deleting the tag detaches it everywhere
	require.NoError(t, w.admin.DeleteTag(ctx, tag.ID))

	after, err := w.staff.Product(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Tags)
}

func TestRoles_AdminEmployeeDirectory(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	staff, err := w.admin.RegisterEmployee(ctx, appparty.RegisterEmployeeRequest{
		Name:     "Grace Hopper",
		Username: "ghopper",
		Password: "secret1",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "ghopper@company.example", staff.Email)

	_, err = w.admin.RegisterEmployee(ctx, appparty.RegisterEmployeeRequest{
		Name:     "Impostor",
		Username: "ghopper",
		Password: "secret1",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, shared.ErrDuplicateName)

	require.NoError(t, w.admin.RemoveEmployee(ctx, staff.ID))

	remaining, err := w.admin.Employees(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRoles_DeliveryPointOnOrder(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	point, err := w.admin.AddDeliveryPoint(ctx, appdelivery.DeliveryPointRequest{
		Street:     "1 Depot Rd",
		City:       "Springfield",
		PostalCode: "62704",
	})
	require.NoError(t, err)

	ada := w.signUpCustomer(t, "ada")
	o, err := ada.OpenOrder(ctx)
	require.NoError(t, err)

	require.NoError(t, ada.AttachDeliveryPoint(ctx, o.ID, point.ID))

	dest, err := w.staff.ShippingDestination(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Depot Rd, Springfield 62704", dest)
}

func TestRoles_DeleteAccountNeedsPassword(t *testing.T) {
	w := newWorld()
	ctx := context.Background()

	ada := w.signUpCustomer(t, "ada")

	err := ada.DeleteAccount(ctx, "not-the-password")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

	all, err := w.admin.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, ada.DeleteAccount(ctx, "secret1"))

	all, err = w.admin.Customers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
