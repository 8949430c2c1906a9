package delivery

import (
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for the delivery context
const (
	EventDeliveryPointAdded   = "delivery.point.added"
	EventDeliveryPointRemoved = "delivery.point.removed"
)

// DeliveryPointAddedEvent is emitted when a delivery point is registered
type DeliveryPointAddedEvent struct {
	shared.BaseDomainEvent
	Street string `json:"street"`
	City   string `json:"city"`
}

// NewDeliveryPointAddedEvent creates a new DeliveryPointAddedEvent
func NewDeliveryPointAddedEvent(point *DeliveryPoint) *DeliveryPointAddedEvent {
	return &DeliveryPointAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDeliveryPointAdded, "DeliveryPoint", point.ID),
		Street:          point.Street,
		City:            point.City,
	}
}

// DeliveryPointRemovedEvent is emitted when a delivery point is removed
type DeliveryPointRemovedEvent struct {
	shared.BaseDomainEvent
	Street string `json:"street"`
	City   string `json:"city"`
}

// NewDeliveryPointRemovedEvent creates a new DeliveryPointRemovedEvent
func NewDeliveryPointRemovedEvent(point *DeliveryPoint) *DeliveryPointRemovedEvent {
	return &DeliveryPointRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDeliveryPointRemoved, "DeliveryPoint", point.ID),
		Street:          point.Street,
		City:            point.City,
	}
}
