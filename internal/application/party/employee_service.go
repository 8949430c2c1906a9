package party

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
)

// Company mail domain for derived employee addresses
const employeeMailDomain = "company.example"

// EmployeeService handles employee directory operations
type EmployeeService struct {
	employees      party.EmployeeRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employees party.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		validate:  validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *EmployeeService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Register creates a new employee. The email is derived from the
// username on the company mail domain.
func (s *EmployeeService) Register(ctx context.Context, req RegisterEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	existing, err := s.employees.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicateName
	}

	email := fmt.Sprintf("%s@%s", strings.ToLower(strings.TrimSpace(req.Username)), employeeMailDomain)

	employee, err := party.NewEmployee(req.Name, req.Username, email, req.Password, party.EmployeeRole(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, employee)

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Get retrieves an employee by id
func (s *EmployeeService) Get(ctx context.Context, id int64) (*EmployeeResponse, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves all employees in registration order
func (s *EmployeeService) List(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.employees.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponses(employees), nil
}

// Update changes an employee's name and username. The derived email
// follows the new username.
func (s *EmployeeService) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if employee.Username != strings.ToLower(strings.TrimSpace(req.Username)) {
		other, err := s.employees.FindByUsername(ctx, req.Username)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if other != nil {
			return nil, shared.ErrDuplicateName
		}
	}

	if err := employee.Update(req.Name, req.Username); err != nil {
		return nil, err
	}
	employee.Email = fmt.Sprintf("%s@%s", employee.Username, employeeMailDomain)

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Remove deletes an employee from the directory
func (s *EmployeeService) Remove(ctx context.Context, id int64) error {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}

	employee.AddDomainEvent(party.NewEmployeeRemovedEvent(employee))
	s.publishEvents(ctx, employee)

	return nil
}

func (s *EmployeeService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
