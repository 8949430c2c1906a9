package catalog

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
)

// TagService handles tag lifecycle operations
type TagService struct {
	tags           catalog.TagRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewTagService creates a new TagService
func NewTagService(tags catalog.TagRepository) *TagService {
	return &TagService{
		tags:     tags,
		validate: validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *TagService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new tag. Tag names are unique; a second create with
// the same name fails with ErrDuplicateName and the set is unchanged.
func (s *TagService) Create(ctx context.Context, req CreateTagRequest) (*TagResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	existing, err := s.tags.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicateName
	}

	tag, err := catalog.NewTag(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.tags.Save(ctx, tag); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tag)

	response := ToTagResponse(tag)
	return &response, nil
}

// Get retrieves a tag by id
func (s *TagService) Get(ctx context.Context, id int64) (*TagResponse, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTagResponse(tag)
	return &response, nil
}

// List retrieves all tags in creation order
func (s *TagService) List(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.tags.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToTagResponses(tags), nil
}

// Delete removes a tag and detaches it from every product that carries
// it, so no product is left with a dangling reference.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tags.DeleteCascading(ctx, id); err != nil {
		return err
	}

	tag.AddDomainEvent(catalog.NewTagDeletedEvent(tag))
	s.publishEvents(ctx, tag)

	return nil
}

func (s *TagService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
