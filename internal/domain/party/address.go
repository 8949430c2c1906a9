package party

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// Address is an entry in a customer's address book. It is owned
// exclusively by one customer and never shared.
type Address struct {
	shared.BaseEntity
	CustomerID int64  `gorm:"not null;index"`
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "customer_addresses"
}

// NewAddress creates a new customer address
func NewAddress(customerID int64, street, city string) (*Address, error) {
	if err := validateAddressFields(street, city); err != nil {
		return nil, err
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Street:     street,
		City:       city,
	}, nil
}

// Update changes the street and city
func (a *Address) Update(street, city string) error {
	if err := validateAddressFields(street, city); err != nil {
		return err
	}

	a.Street = street
	a.City = city
	a.UpdatedAt = time.Now()

	return nil
}

func validateAddressFields(street, city string) error {
	if street == "" {
		return shared.InvalidInputError("Street cannot be empty")
	}
	if city == "" {
		return shared.InvalidInputError("City cannot be empty")
	}
	return nil
}
