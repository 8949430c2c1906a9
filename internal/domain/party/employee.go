package party

import (
	"strings"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeRole represents the capability level of an employee
type EmployeeRole string

const (
	EmployeeRoleStaff EmployeeRole = "staff"
	EmployeeRoleAdmin EmployeeRole = "admin"
)

// IsValid checks if the role is a known EmployeeRole
func (r EmployeeRole) IsValid() bool {
	return r == EmployeeRoleStaff || r == EmployeeRoleAdmin
}

// Employee represents a staff member. Admins are employees with the
// admin role; the admin capability set is a superset of staff.
type Employee struct {
	shared.BaseAggregateRoot
	Name         string       `gorm:"type:varchar(200);not null"`
	Username     string       `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string       `gorm:"type:varchar(200)"`
	PasswordHash string       `gorm:"type:varchar(200);not null"`
	Role         EmployeeRole `gorm:"type:varchar(20);not null;default:'staff'"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee with hashed credentials
func NewEmployee(name, username, email, password string, role EmployeeRole) (*Employee, error) {
	if name == "" {
		return nil, shared.InvalidInputError("Employee name cannot be empty")
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.InvalidInputError("Employee role must be staff or admin")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	employee := &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Username:          strings.ToLower(strings.TrimSpace(username)),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Role:              role,
	}

	employee.AddDomainEvent(NewEmployeeRegisteredEvent(employee))

	return employee, nil
}

// Update changes the employee's name and username
func (e *Employee) Update(name, username string) error {
	if name == "" {
		return shared.InvalidInputError("Employee name cannot be empty")
	}
	if err := validateUsername(username); err != nil {
		return err
	}

	e.Name = name
	e.Username = strings.ToLower(strings.TrimSpace(username))
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (e *Employee) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin reports whether the employee holds the admin role
func (e *Employee) IsAdmin() bool {
	return e.Role == EmployeeRoleAdmin
}
