package order

import (
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for the order context
const (
	EventOrderCreated       = "order.created"
	EventOrderLineAdded     = "order.line_added"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderCreatedEvent is emitted when an order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID int64 `json:"customer_id"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, "Order", o.ID),
		CustomerID:      o.CustomerID,
	}
}

// OrderLineAddedEvent is emitted when a line item is appended
type OrderLineAddedEvent struct {
	shared.BaseDomainEvent
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// NewOrderLineAddedEvent creates a new OrderLineAddedEvent
func NewOrderLineAddedEvent(o *Order, line *OrderLine) *OrderLineAddedEvent {
	return &OrderLineAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderLineAdded, "Order", o.ID),
		ProductID:       line.ProductID,
		Quantity:        line.Quantity,
	}
}

// OrderStatusChangedEvent is emitted on every status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, old OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderStatusChanged, "Order", o.ID),
		OldStatus:       old,
		NewStatus:       o.Status,
	}
}
