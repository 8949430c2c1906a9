package delivery

import (
	"time"

	"github.com/retail/backend/internal/domain/delivery"
)

// DeliveryPointRequest represents a request to add or update a pickup
// location
type DeliveryPointRequest struct {
	Street     string `json:"street" validate:"required,min=1,max=200"`
	City       string `json:"city" validate:"required,min=1,max=100"`
	PostalCode string `json:"postal_code" validate:"required,min=1,max=20"`
}

// DeliveryPointResponse represents a pickup location returned to callers
type DeliveryPointResponse struct {
	ID         int64     `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToDeliveryPointResponse maps a delivery point aggregate to its response
func ToDeliveryPointResponse(p *delivery.DeliveryPoint) DeliveryPointResponse {
	return DeliveryPointResponse{
		ID:         p.ID,
		Street:     p.Street,
		City:       p.City,
		PostalCode: p.PostalCode,
		CreatedAt:  p.CreatedAt,
	}
}

// ToDeliveryPointResponses maps a slice of delivery points
func ToDeliveryPointResponses(points []delivery.DeliveryPoint) []DeliveryPointResponse {
	out := make([]DeliveryPointResponse, 0, len(points))
	for idx := range points {
		out = append(out, ToDeliveryPointResponse(&points[idx]))
	}
	return out
}
