package party

import (
	"regexp"
	"strings"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer represents a registered customer. It is the aggregate root
// for the customer's profile and the nested address book and payment
// method list. Orders are not held on the customer: the order ledger is
// authoritative and the personal order list is a ledger projection.
type Customer struct {
	shared.BaseAggregateRoot
	Name           string          `gorm:"type:varchar(200);not null"`
	Username       string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string          `gorm:"type:varchar(200)"`
	Phone          string          `gorm:"type:varchar(50)"`
	PasswordHash   string          `gorm:"type:varchar(200);not null"`
	Addresses      []Address       `gorm:"foreignKey:CustomerID;references:ID"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with hashed credentials
func NewCustomer(name, username, email, phone, password string) (*Customer, error) {
	if name == "" {
		return nil, shared.InvalidInputError("Customer name cannot be empty")
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

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Username:          strings.ToLower(strings.TrimSpace(username)),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Phone:             strings.TrimSpace(phone),
		PasswordHash:      passwordHash,
		Addresses:         make([]Address, 0),
		PaymentMethods:    make([]PaymentMethod, 0),
	}

	customer.AddDomainEvent(NewCustomerRegisteredEvent(customer))

	return customer, nil
}

// UpdateProfile updates name, email and phone
func (c *Customer) UpdateProfile(name, email, phone string) error {
	if name == "" {
		return shared.InvalidInputError("Customer name cannot be empty")
	}
	if email == "" {
		return shared.InvalidInputError("Customer email cannot be empty")
	}
	if phone == "" {
		return shared.InvalidInputError("Customer phone cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (c *Customer) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
	return err == nil
}

// AddAddress appends a new address to the address book
func (c *Customer) AddAddress(street, city string) (*Address, error) {
	addr, err := NewAddress(c.ID, street, city)
	if err != nil {
		return nil, err
	}

	c.Addresses = append(c.Addresses, *addr)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return addr, nil
}

// EditAddress updates an address by id
func (c *Customer) EditAddress(addressID int64, street, city string) error {
	for idx := range c.Addresses {
		if c.Addresses[idx].ID == addressID {
			if err := c.Addresses[idx].Update(street, city); err != nil {
				return err
			}
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NotFoundError("Address not found")
}

// RemoveAddress removes an address by id
func (c *Customer) RemoveAddress(addressID int64) error {
	for idx := range c.Addresses {
		if c.Addresses[idx].ID == addressID {
			c.Addresses = append(c.Addresses[:idx], c.Addresses[idx+1:]...)
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NotFoundError("Address not found")
}

// GetAddress returns the address with the given id, or nil
func (c *Customer) GetAddress(addressID int64) *Address {
	for idx := range c.Addresses {
		if c.Addresses[idx].ID == addressID {
			return &c.Addresses[idx]
		}
	}
	return nil
}

// AddPaymentMethod appends a new payment method
func (c *Customer) AddPaymentMethod(methodType, data string) (*PaymentMethod, error) {
	method, err := NewPaymentMethod(c.ID, methodType, data)
	if err != nil {
		return nil, err
	}

	c.PaymentMethods = append(c.PaymentMethods, *method)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return method, nil
}

// EditPaymentMethod replaces the data of a payment method by id
func (c *Customer) EditPaymentMethod(paymentID int64, data string) error {
	for idx := range c.PaymentMethods {
		if c.PaymentMethods[idx].ID == paymentID {
			if err := c.PaymentMethods[idx].UpdateData(data); err != nil {
				return err
			}
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NotFoundError("Payment method not found")
}

// MarkPaymentMethodDeleted soft-deletes a payment method by id.
// The entry stays in the list and keeps its id.
func (c *Customer) MarkPaymentMethodDeleted(paymentID int64) error {
	for idx := range c.PaymentMethods {
		if c.PaymentMethods[idx].ID == paymentID {
			c.PaymentMethods[idx].MarkDeleted()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NotFoundError("Payment method not found")
}

// GetPaymentMethod returns the payment method with the given id, or nil
func (c *Customer) GetPaymentMethod(paymentID int64) *PaymentMethod {
	for idx := range c.PaymentMethods {
		if c.PaymentMethods[idx].ID == paymentID {
			return &c.PaymentMethods[idx]
		}
	}
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.InvalidInputError("Username cannot be empty")
	}
	if len(username) < 3 || len(username) > 100 {
		return shared.InvalidInputError("Username must be between 3 and 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return shared.InvalidInputError("Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.InvalidInputError("Password must be at least 6 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
