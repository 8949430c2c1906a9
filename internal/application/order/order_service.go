package order

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/delivery"
	"github.com/retail/backend/internal/domain/order"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
)

// OrderService coordinates the order ledger with the catalog, the party
// directory and the delivery-point registry. Line-item mutations run
// through a TransactionScope so the inventory reservation and the order
// change commit atomically.
type OrderService struct {
	scope          TransactionScope
	orders         order.OrderRepository
	customers      party.CustomerRepository
	points         delivery.DeliveryPointRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewOrderService creates a new OrderService
func NewOrderService(
	scope TransactionScope,
	orders order.OrderRepository,
	customers party.CustomerRepository,
	points delivery.DeliveryPointRepository,
) *OrderService {
	return &OrderService{
		scope:     scope,
		orders:    orders,
		customers: customers,
		points:    points,
		validate:  validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create opens a new pending order for an existing customer
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	if _, err := s.customers.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(req.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// AddLineItem reserves inventory for a (product, quantity) pair and
// appends the line to the order, atomically. When the reservation
// fails, no line is written and the order total is unchanged; when the
// line cannot be appended, the reservation is rolled back with the
// transaction.
func (s *OrderService) AddLineItem(ctx context.Context, orderID int64, req AddLineItemRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	var updated *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		product, err := repos.Products().FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		if err := repos.Products().Reserve(ctx, product.ID, req.Quantity); err != nil {
			return err
		}

		if _, err := o.AddLine(product.ID, product.Name, product.Price, req.Quantity); err != nil {
			return err
		}

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)

	response := ToOrderResponse(updated)
	return &response, nil
}

// AttachAddress points the order at one of the owning customer's
// addresses. An address id outside the owner's address book is rejected.
func (s *OrderService) AttachAddress(ctx context.Context, orderID, addressID int64) error {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	customer, err := s.customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return err
	}
	if customer.GetAddress(addressID) == nil {
		return shared.NotFoundError("Address not found")
	}

	if err := o.AttachAddress(addressID); err != nil {
		return err
	}

	return s.orders.Save(ctx, o)
}

// AttachDeliveryPoint points the order at a shared pickup location
func (s *OrderService) AttachDeliveryPoint(ctx context.Context, orderID, pointID int64) error {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if _, err := s.points.FindByID(ctx, pointID); err != nil {
		return err
	}

	if err := o.AttachDeliveryPoint(pointID); err != nil {
		return err
	}

	return s.orders.Save(ctx, o)
}

// AttachPaymentMethod points the order at one of the owning customer's
// payment methods. Soft-deleted methods are rejected.
func (s *OrderService) AttachPaymentMethod(ctx context.Context, orderID, paymentID int64) error {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	customer, err := s.customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return err
	}

	method := customer.GetPaymentMethod(paymentID)
	if method == nil {
		return shared.NotFoundError("Payment method not found")
	}
	if method.IsDeleted() {
		return shared.InvalidStateError("Cannot attach a deleted payment method")
	}

	if err := o.AttachPaymentMethod(paymentID); err != nil {
		return err
	}

	return s.orders.Save(ctx, o)
}

// SetStatus assigns a status to the order. The transition table locks
// terminal states; a transition to Cancelled releases the reserved
// inventory of every line.
func (s *OrderService) SetStatus(ctx context.Context, orderID int64, req SetStatusRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	status := order.OrderStatus(req.Status)
	if status == order.OrderStatusCancelled {
		return s.Cancel(ctx, orderID)
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if status == order.OrderStatusCompleted {
		err = o.Complete()
	} else {
		err = o.TransitionTo(status)
	}
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// Complete marks the order as completed. Orders without lines cannot
// complete.
func (s *OrderService) Complete(ctx context.Context, orderID int64) (*OrderResponse, error) {
	return s.SetStatus(ctx, orderID, SetStatusRequest{Status: order.OrderStatusCompleted.String()})
}

// Cancel marks the order as cancelled and returns the reserved
// inventory of every line to the catalog, atomically with the status
// change.
func (s *OrderService) Cancel(ctx context.Context, orderID int64) (*OrderResponse, error) {
	var updated *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Cancel(); err != nil {
			return err
		}

		for idx := range o.Lines {
			line := &o.Lines[idx]
			if err := repos.Products().Release(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)

	response := ToOrderResponse(updated)
	return &response, nil
}

// Get retrieves an order with its lines
func (s *OrderService) Get(ctx context.Context, orderID int64) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves the whole ledger, oldest first
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// OrdersByCustomer returns the customer's personal order list. It is a
// ledger projection, so it can never disagree with the ledger.
func (s *OrderService) OrdersByCustomer(ctx context.Context, customerID int64) ([]OrderResponse, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// CompletedOrdersByCustomer returns the customer's purchase history,
// the completed subset of the personal order list.
func (s *OrderService) CompletedOrdersByCustomer(ctx context.Context, customerID int64) ([]OrderResponse, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindByCustomerAndStatus(ctx, customerID, order.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// PendingOrders returns all orders still open for fulfilment
func (s *OrderService) PendingOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindByStatus(ctx, order.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// CompletedOrders returns all settled orders
func (s *OrderService) CompletedOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindByStatus(ctx, order.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Count returns the total number of orders in the ledger
func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orders.CountAll(ctx)
}

// ShippingDestination resolves the order's attached destination: the
// customer address or the shared delivery point, whichever is set.
func (s *OrderService) ShippingDestination(ctx context.Context, orderID int64) (string, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	switch {
	case o.AddressID != nil:
		customer, err := s.customers.FindByID(ctx, o.CustomerID)
		if err != nil {
			return "", err
		}
		addr := customer.GetAddress(*o.AddressID)
		if addr == nil {
			return "", shared.NotFoundError("Address not found")
		}
		return addr.Street + ", " + addr.City, nil
	case o.DeliveryPointID != nil:
		point, err := s.points.FindByID(ctx, *o.DeliveryPointID)
		if err != nil {
			return "", err
		}
		return point.Street + ", " + point.City + " " + point.PostalCode, nil
	default:
		return "", shared.NotFoundError("Order has no shipping destination")
	}
}

// PaymentSettled reports whether the order has a payment method
// attached
func (s *OrderService) PaymentSettled(ctx context.Context, orderID int64) (bool, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	return o.PaymentMethodID != nil, nil
}

func (s *OrderService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
