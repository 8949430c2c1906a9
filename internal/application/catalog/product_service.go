package catalog

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
)

// ProductService handles product and inventory business operations
type ProductService struct {
	products       catalog.ProductRepository
	tags           catalog.TagRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, tags catalog.TagRepository) *ProductService {
	return &ProductService{
		products: products,
		tags:     tags,
		validate: validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Inventory)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Get retrieves a product by id
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products in catalog order
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ListAvailable retrieves products with inventory greater than zero
func (s *ProductService) ListAvailable(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAvailable(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update overwrites a product's fields, inventory included
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Price, req.Inventory); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog. A missing id is a hard
// NotFound failure, never a silent no-op.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	product.AddDomainEvent(catalog.NewProductDeletedEvent(product))
	s.publishEvents(ctx, product)

	return nil
}

// Restock increases a product's inventory by quantity
func (s *ProductService) Restock(ctx context.Context, id, quantity int64) error {
	if quantity <= 0 {
		return shared.InvalidInputError("Restock quantity must be positive")
	}
	return s.AdjustInventory(ctx, id, quantity)
}

// AdjustInventory applies a delta to a product's inventory. The store
// executes the check and the change as one guarded update, so a
// negative delta can never take inventory below zero.
func (s *ProductService) AdjustInventory(ctx context.Context, id, delta int64) error {
	if delta == 0 {
		return shared.InvalidInputError("Inventory delta cannot be zero")
	}
	return s.products.AdjustInventory(ctx, id, delta)
}

// Inventory returns a product's current inventory count
func (s *ProductService) Inventory(ctx context.Context, id int64) (int64, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return product.Inventory, nil
}

// LowStockAlerts returns products with inventory strictly below the
// threshold, in catalog order. A non-positive threshold falls back to
// the default.
func (s *ProductService) LowStockAlerts(ctx context.Context, threshold int64) ([]ProductResponse, error) {
	if threshold <= 0 {
		threshold = catalog.DefaultLowStockThreshold
	}

	products, err := s.products.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// TagProduct attaches a tag to a product. Attaching an attached tag is
// a no-op.
func (s *ProductService) TagProduct(ctx context.Context, productID, tagID int64) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return err
	}

	product.AddTag(*tag)

	if err := s.products.ReplaceTags(ctx, product); err != nil {
		return err
	}

	s.publishEvents(ctx, product)

	return nil
}

// UntagProduct detaches a tag from a product. Detaching an unattached
// tag is a no-op.
func (s *ProductService) UntagProduct(ctx context.Context, productID, tagID int64) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	product.RemoveTag(tagID)

	if err := s.products.ReplaceTags(ctx, product); err != nil {
		return err
	}

	s.publishEvents(ctx, product)

	return nil
}

// ProductsByTag returns all products carrying the given tag
func (s *ProductService) ProductsByTag(ctx context.Context, tagID int64) ([]ProductResponse, error) {
	if _, err := s.tags.FindByID(ctx, tagID); err != nil {
		return nil, err
	}

	products, err := s.products.FindByTag(ctx, tagID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

func (s *ProductService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
