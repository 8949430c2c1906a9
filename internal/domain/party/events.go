package party

import (
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for the party context
const (
	EventCustomerRegistered = "party.customer.registered"
	EventCustomerDeleted    = "party.customer.deleted"
	EventEmployeeRegistered = "party.employee.registered"
	EventEmployeeRemoved    = "party.employee.removed"
)

// CustomerRegisteredEvent is emitted when a customer account is created
type CustomerRegisteredEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewCustomerRegisteredEvent creates a new CustomerRegisteredEvent
func NewCustomerRegisteredEvent(customer *Customer) *CustomerRegisteredEvent {
	return &CustomerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerRegistered, "Customer", customer.ID),
		Username:        customer.Username,
	}
}

// CustomerDeletedEvent is emitted when a customer account is removed
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewCustomerDeletedEvent creates a new CustomerDeletedEvent
func NewCustomerDeletedEvent(customer *Customer) *CustomerDeletedEvent {
	return &CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerDeleted, "Customer", customer.ID),
		Username:        customer.Username,
	}
}

// EmployeeRegisteredEvent is emitted when an employee account is created
type EmployeeRegisteredEvent struct {
	shared.BaseDomainEvent
	Username string       `json:"username"`
	Role     EmployeeRole `json:"role"`
}

// NewEmployeeRegisteredEvent creates a new EmployeeRegisteredEvent
func NewEmployeeRegisteredEvent(employee *Employee) *EmployeeRegisteredEvent {
	return &EmployeeRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventEmployeeRegistered, "Employee", employee.ID),
		Username:        employee.Username,
		Role:            employee.Role,
	}
}

// EmployeeRemovedEvent is emitted when an employee account is removed
type EmployeeRemovedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewEmployeeRemovedEvent creates a new EmployeeRemovedEvent
func NewEmployeeRemovedEvent(employee *Employee) *EmployeeRemovedEvent {
	return &EmployeeRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventEmployeeRemoved, "Employee", employee.ID),
		Username:        employee.Username,
	}
}
