package party

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
)

// AuthService verifies credentials for customers and employees.
// Both an unknown username and a wrong password yield the same
// ErrInvalidCredentials, so login probes cannot tell accounts apart.
type AuthService struct {
	customers party.CustomerRepository
	employees party.EmployeeRepository
	validate  *validator.Validate
}

// NewAuthService creates a new AuthService
func NewAuthService(customers party.CustomerRepository, employees party.EmployeeRepository) *AuthService {
	return &AuthService{
		customers: customers,
		employees: employees,
		validate:  validator.New(),
	}
}

// LoginCustomer checks customer credentials and returns the account
func (s *AuthService) LoginCustomer(ctx context.Context, req LoginRequest) (*CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	customer, err := s.customers.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !customer.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// LoginEmployee checks employee credentials and returns the account
func (s *AuthService) LoginEmployee(ctx context.Context, req LoginRequest) (*EmployeeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	employee, err := s.employees.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !employee.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}
