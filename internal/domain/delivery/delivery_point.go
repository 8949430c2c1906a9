package delivery

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// DeliveryPoint is a shared drop-off location managed by admins. It is
// owned by the registry, not by any customer, and is globally visible.
type DeliveryPoint struct {
	shared.BaseAggregateRoot
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (DeliveryPoint) TableName() string {
	return "delivery_points"
}

// NewDeliveryPoint creates a new delivery point
func NewDeliveryPoint(street, city, postalCode string) (*DeliveryPoint, error) {
	if err := validateLocation(street, city); err != nil {
		return nil, err
	}

	point := &DeliveryPoint{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Street:            street,
		City:              city,
		PostalCode:        postalCode,
	}

	point.AddDomainEvent(NewDeliveryPointAddedEvent(point))

	return point, nil
}

// Update changes the street, city and postal code. The postal code is
// persisted like every other field.
func (p *DeliveryPoint) Update(street, city, postalCode string) error {
	if err := validateLocation(street, city); err != nil {
		return err
	}

	p.Street = street
	p.City = city
	p.PostalCode = postalCode
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

func validateLocation(street, city string) error {
	if street == "" {
		return shared.InvalidInputError("Street cannot be empty")
	}
	if city == "" {
		return shared.InvalidInputError("City cannot be empty")
	}
	return nil
}
