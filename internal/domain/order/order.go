package order

import (
	"fmt"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order. Besides the known
// constants, staff may assign free-text states (e.g. "Shipped"); the
// transition table only locks the terminal states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status locks the order
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target
// status. Any non-terminal status may move to any non-empty status,
// which keeps staff free-text states working; Completed and Cancelled
// accept no further transitions (no reopen operation is designed).
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return target != ""
}

// OrderLine is a line item: an explicit (product, quantity) pair with
// name and price captured at purchase time. The quantity lives on the
// line itself, so reducing inventory by N always corresponds to a line
// holding N units.
type OrderLine struct {
	shared.BaseEntity
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity    int64           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// NewOrderLine creates a new order line
func NewOrderLine(orderID, productID int64, productName string, unitPrice decimal.Decimal, quantity int64) (*OrderLine, error) {
	if productName == "" {
		return nil, shared.InvalidInputError("Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.InvalidInputError("Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.InvalidInputError("Unit price cannot be negative")
	}

	return &OrderLine{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}, nil
}

// Amount returns quantity * unit price
func (l *OrderLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Order represents a customer order. It is the aggregate root
// coordinating the line-item sequence, the address/payment references
// and the status machine. Lines keep insertion order and the same
// product may appear on several lines (repeated purchases).
type Order struct {
	shared.BaseAggregateRoot
	CustomerID      int64       `gorm:"not null;index"`
	Lines           []OrderLine `gorm:"foreignKey:OrderID;references:ID"`
	AddressID       *int64
	DeliveryPointID *int64
	PaymentMethodID *int64
	Status          OrderStatus `gorm:"type:varchar(50);not null;default:'Pending'"`
	CompletedAt     *time.Time
	CancelledAt     *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order for a customer
func NewOrder(customerID int64) (*Order, error) {
	if customerID <= 0 {
		return nil, shared.InvalidInputError("Customer ID cannot be empty")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Lines:             make([]OrderLine, 0),
		Status:            OrderStatusPending,
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return o, nil
}

// AddLine appends a (product, quantity) line to the order. The caller
// is responsible for having reserved the inventory; the aggregate only
// guards its own state.
func (o *Order) AddLine(productID int64, productName string, unitPrice decimal.Decimal, quantity int64) (*OrderLine, error) {
	if !o.CanModify() {
		return nil, shared.InvalidStateError(fmt.Sprintf("Cannot add items to a %s order", o.Status))
	}

	line, err := NewOrderLine(o.ID, productID, productName, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderLineAddedEvent(o, line))

	return line, nil
}

// AttachAddress points the order at one of the owning customer's
// addresses. Ownership is checked by the caller against the customer's
// own address book; a previously attached delivery point is replaced.
func (o *Order) AttachAddress(addressID int64) error {
	if !o.CanModify() {
		return shared.InvalidStateError(fmt.Sprintf("Cannot attach an address to a %s order", o.Status))
	}

	o.AddressID = &addressID
	o.DeliveryPointID = nil
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// AttachDeliveryPoint points the order at a shared delivery point; a
// previously attached customer address is replaced.
func (o *Order) AttachDeliveryPoint(pointID int64) error {
	if !o.CanModify() {
		return shared.InvalidStateError(fmt.Sprintf("Cannot attach a delivery point to a %s order", o.Status))
	}

	o.DeliveryPointID = &pointID
	o.AddressID = nil
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// AttachPaymentMethod points the order at one of the owning customer's
// payment methods. Deleted methods are rejected by the caller before
// reaching the aggregate.
func (o *Order) AttachPaymentMethod(paymentID int64) error {
	if !o.CanModify() {
		return shared.InvalidStateError(fmt.Sprintf("Cannot attach a payment method to a %s order", o.Status))
	}

	o.PaymentMethodID = &paymentID
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// TransitionTo moves the order to a new status through the transition
// table. Free-text states are permitted; terminal states are not left.
func (o *Order) TransitionTo(status OrderStatus) error {
	if status == "" {
		return shared.InvalidInputError("Order status cannot be empty")
	}
	if !o.Status.CanTransitionTo(status) {
		return shared.InvalidStateError(fmt.Sprintf("Cannot transition order from %s to %s", o.Status, status))
	}

	old := o.Status
	now := time.Now()
	o.Status = status
	o.UpdatedAt = now
	o.IncrementVersion()

	switch status {
	case OrderStatusCompleted:
		o.CompletedAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old))

	return nil
}

// Complete marks the order as completed. An order without lines cannot
// be completed.
func (o *Order) Complete() error {
	if len(o.Lines) == 0 {
		return shared.InvalidStateError("Cannot complete an order without items")
	}
	return o.TransitionTo(OrderStatusCompleted)
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	return o.TransitionTo(OrderStatusCancelled)
}

// CanModify reports whether lines and references may still change
func (o *Order) CanModify() bool {
	return !o.Status.IsTerminal()
}

// IsPending returns true if the order is pending
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsCompleted returns true if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// LineCount returns the number of lines on the order
func (o *Order) LineCount() int {
	return len(o.Lines)
}

// TotalQuantity returns the sum of all line quantities
func (o *Order) TotalQuantity() int64 {
	var total int64
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}

// TotalAmount returns the sum of all line amounts
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Amount())
	}
	return total
}
