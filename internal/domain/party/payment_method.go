package party

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// PaymentMethodStatus represents the status of a stored payment method
type PaymentMethodStatus string

const (
	PaymentMethodStatusActive  PaymentMethodStatus = "active"
	PaymentMethodStatusPending PaymentMethodStatus = "pending"
	PaymentMethodStatusDeleted PaymentMethodStatus = "deleted"
)

// IsValid checks if the status is a known PaymentMethodStatus
func (s PaymentMethodStatus) IsValid() bool {
	switch s {
	case PaymentMethodStatusActive, PaymentMethodStatusPending, PaymentMethodStatusDeleted:
		return true
	}
	return false
}

// PaymentMethod is a payment record stored on a customer. Payment
// execution is out of scope; only the record and its status are tracked.
// Deletion is a status transition, never a removal, so orders that
// reference the method keep resolving it.
type PaymentMethod struct {
	shared.BaseEntity
	CustomerID int64               `gorm:"not null;index"`
	Type       string              `gorm:"type:varchar(50);not null"`
	Data       string              `gorm:"type:text"`
	Status     PaymentMethodStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// NewPaymentMethod creates a new active payment method
func NewPaymentMethod(customerID int64, methodType, data string) (*PaymentMethod, error) {
	if methodType == "" {
		return nil, shared.InvalidInputError("Payment method type cannot be empty")
	}

	return &PaymentMethod{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Type:       methodType,
		Data:       data,
		Status:     PaymentMethodStatusActive,
	}, nil
}

// UpdateData replaces the opaque payment data
func (m *PaymentMethod) UpdateData(data string) error {
	if m.IsDeleted() {
		return shared.InvalidStateError("Cannot edit a deleted payment method")
	}

	m.Data = data
	m.UpdatedAt = time.Now()

	return nil
}

// MarkDeleted flips the status to deleted. The record stays addressable.
func (m *PaymentMethod) MarkDeleted() {
	m.Status = PaymentMethodStatusDeleted
	m.UpdatedAt = time.Now()
}

// IsDeleted reports whether the method has been soft-deleted
func (m *PaymentMethod) IsDeleted() bool {
	return m.Status == PaymentMethodStatusDeleted
}
