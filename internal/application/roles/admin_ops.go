package roles

import (
	"context"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	appdelivery "github.com/retail/backend/internal/application/delivery"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
)

// AdminOps is the capability set of a signed-in admin. It embeds the
// staff capabilities and adds tag management, the employee directory,
// the delivery-point registry, customer administration and ledger-wide
// reporting.
type AdminOps struct {
	*StaffOps
	tags      *appcatalog.TagService
	customers *appparty.CustomerService
	employees *appparty.EmployeeService
	points    *appdelivery.DeliveryPointService
}

// NewAdminOps creates the admin capability set
func NewAdminOps(
	staff *StaffOps,
	tags *appcatalog.TagService,
	customers *appparty.CustomerService,
	employees *appparty.EmployeeService,
	points *appdelivery.DeliveryPointService,
) *AdminOps {
	return &AdminOps{
		StaffOps:  staff,
		tags:      tags,
		customers: customers,
		employees: employees,
		points:    points,
	}
}

// CreateTag registers a new tag
func (a *AdminOps) CreateTag(ctx context.Context, req appcatalog.CreateTagRequest) (*appcatalog.TagResponse, error) {
	return a.tags.Create(ctx, req)
}

// DeleteTag removes a tag and detaches it from every product
func (a *AdminOps) DeleteTag(ctx context.Context, id int64) error {
	return a.tags.Delete(ctx, id)
}

// Tags lists all tags
func (a *AdminOps) Tags(ctx context.Context) ([]appcatalog.TagResponse, error) {
	return a.tags.List(ctx)
}

// RegisterEmployee adds a staff member or another admin to the
// directory
func (a *AdminOps) RegisterEmployee(ctx context.Context, req appparty.RegisterEmployeeRequest) (*appparty.EmployeeResponse, error) {
	return a.employees.Register(ctx, req)
}

// UpdateEmployee changes an employee's name and username
func (a *AdminOps) UpdateEmployee(ctx context.Context, id int64, req appparty.UpdateEmployeeRequest) (*appparty.EmployeeResponse, error) {
	return a.employees.Update(ctx, id, req)
}

// RemoveEmployee deletes an employee from the directory
func (a *AdminOps) RemoveEmployee(ctx context.Context, id int64) error {
	return a.employees.Remove(ctx, id)
}

// Employees lists the employee directory
func (a *AdminOps) Employees(ctx context.Context) ([]appparty.EmployeeResponse, error) {
	return a.employees.List(ctx)
}

// Customers lists all registered customers
func (a *AdminOps) Customers(ctx context.Context) ([]appparty.CustomerResponse, error) {
	return a.customers.List(ctx)
}

// RemoveCustomer deletes a customer account without password
// confirmation
func (a *AdminOps) RemoveCustomer(ctx context.Context, id int64) error {
	return a.customers.Remove(ctx, id)
}

// AddDeliveryPoint registers a shared pickup location
func (a *AdminOps) AddDeliveryPoint(ctx context.Context, req appdelivery.DeliveryPointRequest) (*appdelivery.DeliveryPointResponse, error) {
	return a.points.Create(ctx, req)
}

// UpdateDeliveryPoint overwrites a pickup location's fields
func (a *AdminOps) UpdateDeliveryPoint(ctx context.Context, id int64, req appdelivery.DeliveryPointRequest) (*appdelivery.DeliveryPointResponse, error) {
	return a.points.Update(ctx, id, req)
}

// RemoveDeliveryPoint deletes a pickup location
func (a *AdminOps) RemoveDeliveryPoint(ctx context.Context, id int64) error {
	return a.points.Remove(ctx, id)
}

// DeliveryPoints lists the registry
func (a *AdminOps) DeliveryPoints(ctx context.Context) ([]appdelivery.DeliveryPointResponse, error) {
	return a.points.List(ctx)
}

// OrderCount returns the total number of orders ever placed
func (a *AdminOps) OrderCount(ctx context.Context) (int64, error) {
	return a.orders.Count(ctx)
}

// CompletedOrders lists all settled orders
func (a *AdminOps) CompletedOrders(ctx context.Context) ([]apporder.OrderResponse, error) {
	return a.orders.CompletedOrders(ctx)
}

// AllOrders lists the whole ledger, oldest first
func (a *AdminOps) AllOrders(ctx context.Context) ([]apporder.OrderResponse, error) {
	return a.orders.List(ctx)
}
