package party

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers.
// FindByID and FindByUsername load the nested address book and payment
// method list along with the aggregate.
type CustomerRepository interface {
	shared.Repository[Customer]

	// FindByUsername returns the customer with the given (lowercased)
	// username
	FindByUsername(ctx context.Context, username string) (*Customer, error)
}

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	shared.Repository[Employee]

	// FindByUsername returns the employee with the given (lowercased)
	// username
	FindByUsername(ctx context.Context, username string) (*Employee, error)
}
