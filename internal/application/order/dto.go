package order

import (
	"time"

	"github.com/retail/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to open an order for a
// customer
type CreateOrderRequest struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
}

// AddLineItemRequest represents a request to add a (product, quantity)
// line to an order
type AddLineItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// SetStatusRequest represents a staff status assignment. Free-text
// states are allowed next to the built-in ones.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}

// OrderLineResponse represents a line item returned to callers
type OrderLineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order returned to callers
type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerID      int64               `json:"customer_id"`
	Lines           []OrderLineResponse `json:"lines"`
	AddressID       *int64              `json:"address_id,omitempty"`
	DeliveryPointID *int64              `json:"delivery_point_id,omitempty"`
	PaymentMethodID *int64              `json:"payment_method_id,omitempty"`
	Status          string              `json:"status"`
	TotalQuantity   int64               `json:"total_quantity"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	CreatedAt       time.Time           `json:"created_at"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
}

// ToOrderLineResponse maps an order line to its response
func ToOrderLineResponse(l *order.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		UnitPrice:   l.UnitPrice,
		Quantity:    l.Quantity,
		Amount:      l.Amount(),
	}
}

// ToOrderResponse maps an order aggregate to its response
func ToOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for idx := range o.Lines {
		lines = append(lines, ToOrderLineResponse(&o.Lines[idx]))
	}
	return OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Lines:           lines,
		AddressID:       o.AddressID,
		DeliveryPointID: o.DeliveryPointID,
		PaymentMethodID: o.PaymentMethodID,
		Status:          o.Status.String(),
		TotalQuantity:   o.TotalQuantity(),
		TotalAmount:     o.TotalAmount(),
		CreatedAt:       o.CreatedAt,
		CompletedAt:     o.CompletedAt,
		CancelledAt:     o.CancelledAt,
	}
}

// ToOrderResponses maps a slice of orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for idx := range orders {
		out = append(out, ToOrderResponse(&orders[idx]))
	}
	return out
}
