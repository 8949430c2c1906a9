package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
	"github.com/shopspring/decimal"
)

// shell is a thin interactive front over the role façades. It parses
// input and prints results; all rules live behind the façades.
type shell struct {
	app *app
	in  *bufio.Scanner
}

func (a *app) runShell(ctx context.Context) error {
	s := &shell{app: a, in: bufio.NewScanner(os.Stdin)}
	fmt.Println("retaild shell. Seeded logins: carol/secret1, sam/staff123, alice/admin123.")

	for {
		fmt.Println("\n1) browse catalog  2) sign up  3) customer login  4) employee login  0) quit")
		switch s.prompt("> ") {
		case "1":
			s.printCatalog(ctx)
		case "2":
			s.signUp(ctx)
		case "3":
			s.customerSession(ctx)
		case "4":
			s.employeeSession(ctx)
		case "0", "":
			return nil
		}
	}
}

func (s *shell) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *shell) promptID(label string) int64 {
	n, err := strconv.ParseInt(s.prompt(label), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (s *shell) printCatalog(ctx context.Context) {
	products, err := s.app.products.ListAvailable(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range products {
		fmt.Printf("  #%d %-22s %8s  stock %d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Inventory)
	}
}

func (s *shell) signUp(ctx context.Context) {
	req := appparty.RegisterCustomerRequest{
		Name:     s.prompt("name: "),
		Username: s.prompt("username: "),
		Email:    s.prompt("email: "),
		Password: s.prompt("password: "),
	}
	customer, err := s.app.customers.Register(ctx, req)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("welcome, %s (customer #%d)\n", customer.Name, customer.ID)
}

func (s *shell) customerSession(ctx context.Context) {
	customer, err := s.app.auth.LoginCustomer(ctx, appparty.LoginRequest{
		Username: s.prompt("username: "),
		Password: s.prompt("password: "),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ops := s.app.customerOps(customer.ID)
	fmt.Printf("logged in as %s\n", customer.Name)

	for {
		fmt.Println("\n1) catalog  2) my orders  3) new order  4) add item  5) attach address")
		fmt.Println("6) attach delivery point  7) attach payment  8) complete  9) cancel")
		fmt.Println("10) addresses  11) add address  12) payment methods  13) add payment method")
		fmt.Println("14) purchase history  0) logout")
		switch s.prompt("> ") {
		case "1":
			s.printCatalog(ctx)
		case "2":
			orders, err := ops.Orders(ctx)
			s.printOrders(orders, err)
		case "3":
			order, err := ops.OpenOrder(ctx)
			if err == nil {
				fmt.Printf("opened order #%d\n", order.ID)
			}
			s.printErr(err)
		case "4":
			order, err := ops.AddToOrder(ctx, s.promptID("order id: "), apporder.AddLineItemRequest{
				ProductID: s.promptID("product id: "),
				Quantity:  s.promptID("quantity: "),
			})
			if err == nil {
				fmt.Printf("order #%d now totals %s\n", order.ID, order.TotalAmount.StringFixed(2))
			}
			s.printErr(err)
		case "5":
			s.printErr(ops.AttachAddress(ctx, s.promptID("order id: "), s.promptID("address id: ")))
		case "6":
			s.printErr(ops.AttachDeliveryPoint(ctx, s.promptID("order id: "), s.promptID("point id: ")))
		case "7":
			s.printErr(ops.AttachPaymentMethod(ctx, s.promptID("order id: "), s.promptID("payment id: ")))
		case "8":
			order, err := ops.CompleteOrder(ctx, s.promptID("order id: "))
			if err == nil {
				fmt.Printf("order #%d is %s\n", order.ID, order.Status)
			}
			s.printErr(err)
		case "9":
			order, err := ops.CancelOrder(ctx, s.promptID("order id: "))
			if err == nil {
				fmt.Printf("order #%d is %s\n", order.ID, order.Status)
			}
			s.printErr(err)
		case "10":
			addresses, err := ops.Addresses(ctx)
			if err == nil {
				for _, addr := range addresses {
					fmt.Printf("  #%d %s, %s\n", addr.ID, addr.Street, addr.City)
				}
			}
			s.printErr(err)
		case "11":
			address, err := ops.AddAddress(ctx, appparty.AddressRequest{
				Street: s.prompt("street: "),
				City:   s.prompt("city: "),
			})
			if err == nil {
				fmt.Printf("saved address #%d\n", address.ID)
			}
			s.printErr(err)
		case "12":
			methods, err := ops.PaymentMethods(ctx)
			if err == nil {
				for _, m := range methods {
					fmt.Printf("  #%d %s (%s)\n", m.ID, m.Type, m.Status)
				}
			}
			s.printErr(err)
		case "13":
			method, err := ops.AddPaymentMethod(ctx, appparty.PaymentMethodRequest{
				Type: s.prompt("type: "),
				Data: s.prompt("data: "),
			})
			if err == nil {
				fmt.Printf("saved payment method #%d\n", method.ID)
			}
			s.printErr(err)
		case "14":
			orders, err := ops.PurchaseHistory(ctx)
			s.printOrders(orders, err)
		case "0", "":
			return
		}
	}
}

func (s *shell) employeeSession(ctx context.Context) {
	employee, err := s.app.auth.LoginEmployee(ctx, appparty.LoginRequest{
		Username: s.prompt("username: "),
		Password: s.prompt("password: "),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("logged in as %s (%s)\n", employee.Name, employee.Role)

	isAdmin := employee.Role == "admin"
	for {
		fmt.Println("\n1) pending orders  2) order detail  3) set status  4) restock  5) low stock")
		fmt.Println("6) shipping destination  7) payment settled  8) new product")
		if isAdmin {
			fmt.Println("9) customers  10) employees  11) tags  12) new tag  13) order count  0) logout")
		} else {
			fmt.Println("0) logout")
		}
		choice := s.prompt("> ")
		switch choice {
		case "1":
			orders, err := s.app.staffOps.PendingOrders(ctx)
			s.printOrders(orders, err)
		case "2":
			order, err := s.app.staffOps.Order(ctx, s.promptID("order id: "))
			if err == nil {
				fmt.Printf("order #%d [%s] customer #%d, total %s\n",
					order.ID, order.Status, order.CustomerID, order.TotalAmount.StringFixed(2))
				for _, line := range order.Lines {
					fmt.Printf("  %dx %s @ %s\n", line.Quantity, line.ProductName, line.UnitPrice.StringFixed(2))
				}
			}
			s.printErr(err)
		case "3":
			order, err := s.app.staffOps.SetOrderStatus(ctx, s.promptID("order id: "), s.prompt("status: "))
			if err == nil {
				fmt.Printf("order #%d is %s\n", order.ID, order.Status)
			}
			s.printErr(err)
		case "4":
			s.printErr(s.app.staffOps.Restock(ctx, s.promptID("product id: "), s.promptID("quantity: ")))
		case "5":
			products, err := s.app.staffOps.LowStockAlerts(ctx, s.promptID("threshold (0 = default): "))
			if err == nil {
				for _, p := range products {
					fmt.Printf("  #%d %s: %d left\n", p.ID, p.Name, p.Inventory)
				}
			}
			s.printErr(err)
		case "6":
			destination, err := s.app.staffOps.ShippingDestination(ctx, s.promptID("order id: "))
			if err == nil {
				fmt.Println(destination)
			}
			s.printErr(err)
		case "7":
			settled, err := s.app.staffOps.PaymentSettled(ctx, s.promptID("order id: "))
			if err == nil {
				fmt.Println("settled:", settled)
			}
			s.printErr(err)
		case "8":
			s.createProduct(ctx)
		case "9":
			if isAdmin {
				customers, err := s.app.adminOps.Customers(ctx)
				if err == nil {
					for _, c := range customers {
						fmt.Printf("  #%d %s (%s)\n", c.ID, c.Name, c.Username)
					}
				}
				s.printErr(err)
			}
		case "10":
			if isAdmin {
				staff, err := s.app.adminOps.Employees(ctx)
				if err == nil {
					for _, e := range staff {
						fmt.Printf("  #%d %s <%s> %s\n", e.ID, e.Name, e.Email, e.Role)
					}
				}
				s.printErr(err)
			}
		case "11":
			if isAdmin {
				tags, err := s.app.adminOps.Tags(ctx)
				if err == nil {
					for _, tag := range tags {
						fmt.Printf("  #%d %s\n", tag.ID, tag.Name)
					}
				}
				s.printErr(err)
			}
		case "12":
			if isAdmin {
				tag, err := s.app.adminOps.CreateTag(ctx, appcatalog.CreateTagRequest{Name: s.prompt("name: ")})
				if err == nil {
					fmt.Printf("created tag #%d\n", tag.ID)
				}
				s.printErr(err)
			}
		case "13":
			if isAdmin {
				count, err := s.app.adminOps.OrderCount(ctx)
				if err == nil {
					fmt.Println("orders in ledger:", count)
				}
				s.printErr(err)
			}
		case "0", "":
			return
		}
	}
}

func (s *shell) createProduct(ctx context.Context) {
	name := s.prompt("name: ")
	description := s.prompt("description: ")
	price, err := decimal.NewFromString(s.prompt("price: "))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	product, err := s.app.staffOps.CreateProduct(ctx, appcatalog.CreateProductRequest{
		Name:        name,
		Description: description,
		Price:       price,
		Inventory:   s.promptID("inventory: "),
	})
	if err == nil {
		fmt.Printf("created product #%d\n", product.ID)
	}
	s.printErr(err)
}

func (s *shell) printOrders(orders []apporder.OrderResponse, err error) {
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, o := range orders {
		fmt.Printf("  #%d [%s] %d item(s), total %s\n",
			o.ID, o.Status, o.TotalQuantity, o.TotalAmount.StringFixed(2))
	}
}

func (s *shell) printErr(err error) {
	if err != nil {
		fmt.Println("error:", err)
	}
}
