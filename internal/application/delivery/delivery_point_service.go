package delivery

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/delivery"
	"github.com/retail/backend/internal/domain/shared"
)

// DeliveryPointService handles the shared registry of pickup locations
type DeliveryPointService struct {
	points         delivery.DeliveryPointRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewDeliveryPointService creates a new DeliveryPointService
func NewDeliveryPointService(points delivery.DeliveryPointRepository) *DeliveryPointService {
	return &DeliveryPointService{
		points:   points,
		validate: validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *DeliveryPointService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new pickup location
func (s *DeliveryPointService) Create(ctx context.Context, req DeliveryPointRequest) (*DeliveryPointResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	point, err := delivery.NewDeliveryPoint(req.Street, req.City, req.PostalCode)
	if err != nil {
		return nil, err
	}

	if err := s.points.Save(ctx, point); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, point)

	response := ToDeliveryPointResponse(point)
	return &response, nil
}

// Get retrieves a pickup location by id
func (s *DeliveryPointService) Get(ctx context.Context, id int64) (*DeliveryPointResponse, error) {
	point, err := s.points.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDeliveryPointResponse(point)
	return &response, nil
}

// List retrieves all pickup locations in registration order
func (s *DeliveryPointService) List(ctx context.Context) ([]DeliveryPointResponse, error) {
	points, err := s.points.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToDeliveryPointResponses(points), nil
}

// Update overwrites a pickup location's street, city and postal code
func (s *DeliveryPointService) Update(ctx context.Context, id int64, req DeliveryPointRequest) (*DeliveryPointResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	point, err := s.points.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := point.Update(req.Street, req.City, req.PostalCode); err != nil {
		return nil, err
	}

	if err := s.points.Save(ctx, point); err != nil {
		return nil, err
	}

	response := ToDeliveryPointResponse(point)
	return &response, nil
}

// Remove deletes a pickup location from the registry
func (s *DeliveryPointService) Remove(ctx context.Context, id int64) error {
	point, err := s.points.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.points.Delete(ctx, id); err != nil {
		return err
	}

	point.AddDomainEvent(delivery.NewDeliveryPointRemovedEvent(point))
	s.publishEvents(ctx, point)

	return nil
}

func (s *DeliveryPointService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
