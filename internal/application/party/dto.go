package party

import (
	"time"

	"github.com/retail/backend/internal/domain/party"
)

// RegisterCustomerRequest represents a customer self-registration
type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest represents a customer profile update
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// AddressRequest represents a request to add or edit an address
type AddressRequest struct {
	Street string `json:"street" validate:"required,min=1,max=200"`
	City   string `json:"city" validate:"required,min=1,max=100"`
}

// PaymentMethodRequest represents a request to add a payment method
type PaymentMethodRequest struct {
	Type string `json:"type" validate:"required,min=1,max=50"`
	Data string `json:"data"`
}

// RegisterEmployeeRequest represents an admin registering an employee.
// The employee email is derived from the username.
type RegisterEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=staff admin"`
}

// UpdateEmployeeRequest represents an employee record update
type UpdateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
}

// LoginRequest represents a credential check
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CustomerResponse represents a customer returned to callers
type CustomerResponse struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	Username       string                  `json:"username"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Addresses      []AddressResponse       `json:"addresses"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
	CreatedAt      time.Time               `json:"created_at"`
}

// AddressResponse represents an address book entry
type AddressResponse struct {
	ID     int64  `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
}

// PaymentMethodResponse represents a stored payment method
type PaymentMethodResponse struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Data   string `json:"data"`
	Status string `json:"status"`
}

// EmployeeResponse represents an employee returned to callers
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse maps a customer aggregate to its response
func ToCustomerResponse(c *party.Customer) CustomerResponse {
	addresses := make([]AddressResponse, 0, len(c.Addresses))
	for idx := range c.Addresses {
		addresses = append(addresses, ToAddressResponse(&c.Addresses[idx]))
	}
	methods := make([]PaymentMethodResponse, 0, len(c.PaymentMethods))
	for idx := range c.PaymentMethods {
		methods = append(methods, ToPaymentMethodResponse(&c.PaymentMethods[idx]))
	}
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Username:       c.Username,
		Email:          c.Email,
		Phone:          c.Phone,
		Addresses:      addresses,
		PaymentMethods: methods,
		CreatedAt:      c.CreatedAt,
	}
}

// ToCustomerResponses maps a slice of customers
func ToCustomerResponses(customers []party.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for idx := range customers {
		out = append(out, ToCustomerResponse(&customers[idx]))
	}
	return out
}

// ToAddressResponse maps an address entity to its response
func ToAddressResponse(a *party.Address) AddressResponse {
	return AddressResponse{ID: a.ID, Street: a.Street, City: a.City}
}

// ToPaymentMethodResponse maps a payment method entity to its response
func ToPaymentMethodResponse(m *party.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:     m.ID,
		Type:   m.Type,
		Data:   m.Data,
		Status: string(m.Status),
	}
}

// ToEmployeeResponse maps an employee aggregate to its response
func ToEmployeeResponse(e *party.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Username:  e.Username,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}

// ToEmployeeResponses maps a slice of employees
func ToEmployeeResponses(employees []party.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for idx := range employees {
		out = append(out, ToEmployeeResponse(&employees[idx]))
	}
	return out
}
