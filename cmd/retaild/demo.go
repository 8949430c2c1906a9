package main

import (
	"context"
	"fmt"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	appdelivery "github.com/retail/backend/internal/application/delivery"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// seed loads a small sample data set through the admin façade. The
// store is in-memory by default, so every run starts from this state.
func (a *app) seed(ctx context.Context) error {
	if _, err := a.employees.Register(ctx, appparty.RegisterEmployeeRequest{
		Name: "Alice Admin", Username: "alice", Password: "admin123", Role: "admin",
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := a.employees.Register(ctx, appparty.RegisterEmployeeRequest{
		Name: "Sam Staff", Username: "sam", Password: "staff123", Role: "staff",
	}); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}

	electronics, err := a.adminOps.CreateTag(ctx, appcatalog.CreateTagRequest{Name: "electronics"})
	if err != nil {
		return fmt.Errorf("seed tag: %w", err)
	}
	grocery, err := a.adminOps.CreateTag(ctx, appcatalog.CreateTagRequest{Name: "grocery"})
	if err != nil {
		return fmt.Errorf("seed tag: %w", err)
	}

	catalogSeed := []struct {
		req appcatalog.CreateProductRequest
		tag int64
	}{
		{appcatalog.CreateProductRequest{Name: "Mechanical Keyboard", Description: "87 keys", Price: decimal.NewFromInt(89), Inventory: 25}, electronics.ID},
		{appcatalog.CreateProductRequest{Name: "USB-C Hub", Description: "7 ports", Price: decimal.NewFromInt(39), Inventory: 40}, electronics.ID},
		{appcatalog.CreateProductRequest{Name: "Coffee Beans 1kg", Description: "medium roast", Price: decimal.NewFromFloat(14.5), Inventory: 120}, grocery.ID},
	}
	for _, item := range catalogSeed {
		product, err := a.staffOps.CreateProduct(ctx, item.req)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", item.req.Name, err)
		}
		if err := a.staffOps.TagProduct(ctx, product.ID, item.tag); err != nil {
			return fmt.Errorf("seed tag product %q: %w", item.req.Name, err)
		}
	}

	if _, err := a.adminOps.AddDeliveryPoint(ctx, appdelivery.DeliveryPointRequest{
		Street: "1 Depot Rd", City: "Springfield", PostalCode: "62704",
	}); err != nil {
		return fmt.Errorf("seed delivery point: %w", err)
	}

	if _, err := a.customers.Register(ctx, appparty.RegisterCustomerRequest{
		Name: "Carol Customer", Username: "carol", Email: "carol@example.com", Password: "secret1",
	}); err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	a.log.Info("sample data loaded")
	return nil
}

// runDemo walks one purchase end to end through the role façades and
// prints each step.
func (a *app) runDemo(ctx context.Context) error {
	carol, err := a.auth.LoginCustomer(ctx, appparty.LoginRequest{Username: "carol", Password: "secret1"})
	if err != nil {
		return err
	}
	ops := a.customerOps(carol.ID)
	fmt.Printf("logged in as %s (customer #%d)\n", carol.Name, carol.ID)

	products, err := ops.BrowseProducts(ctx)
	if err != nil {
		return err
	}
	fmt.Println("catalog:")
	for _, p := range products {
		fmt.Printf("  #%d %-22s %8s  stock %d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Inventory)
	}

	address, err := ops.AddAddress(ctx, appparty.AddressRequest{Street: "12 Main St", City: "Springfield"})
	if err != nil {
		return err
	}
	payment, err := ops.AddPaymentMethod(ctx, appparty.PaymentMethodRequest{Type: "card", Data: "tok_demo"})
	if err != nil {
		return err
	}

	order, err := ops.OpenOrder(ctx)
	if err != nil {
		return err
	}
	order, err = ops.AddToOrder(ctx, order.ID, apporder.AddLineItemRequest{ProductID: products[0].ID, Quantity: 2})
	if err != nil {
		return err
	}
	order, err = ops.AddToOrder(ctx, order.ID, apporder.AddLineItemRequest{ProductID: products[1].ID, Quantity: 1})
	if err != nil {
		return err
	}
	if err := ops.AttachAddress(ctx, order.ID, address.ID); err != nil {
		return err
	}
	if err := ops.AttachPaymentMethod(ctx, order.ID, payment.ID); err != nil {
		return err
	}
	fmt.Printf("order #%d: %d items, total %s\n", order.ID, order.TotalQuantity, order.TotalAmount.StringFixed(2))

	pending, err := a.staffOps.PendingOrders(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("staff sees %d pending order(s)\n", len(pending))

	destination, err := a.staffOps.ShippingDestination(ctx, order.ID)
	if err != nil {
		return err
	}
	settled, err := a.staffOps.PaymentSettled(ctx, order.ID)
	if err != nil {
		return err
	}
	fmt.Printf("ships to %q, payment settled: %v\n", destination, settled)

	order, err = ops.CompleteOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	fmt.Printf("order #%d is now %s\n", order.ID, order.Status)

	left, err := a.staffOps.Inventory(ctx, products[0].ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s stock after sale: %d\n", products[0].Name, left)

	count, err := a.adminOps.OrderCount(ctx)
	if err != nil {
		return err
	}
	a.log.Info("demo finished", zap.Int64("orders_in_ledger", count))
	return nil
}
