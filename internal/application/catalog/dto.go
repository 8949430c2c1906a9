package catalog

import (
	"time"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int64           `json:"inventory" validate:"gte=0"`
}

// UpdateProductRequest represents a request to overwrite a product's
// fields, inventory included (direct set, not a delta)
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int64           `json:"inventory" validate:"gte=0"`
}

// CreateTagRequest represents a request to create a tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ProductResponse represents a product returned to callers
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int64           `json:"inventory"`
	Tags        []TagResponse   `json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TagResponse represents a tag returned to callers
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToProductResponse maps a product aggregate to its response
func ToProductResponse(p *catalog.Product) ProductResponse {
	tags := make([]TagResponse, 0, len(p.Tags))
	for idx := range p.Tags {
		tags = append(tags, ToTagResponse(&p.Tags[idx]))
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Inventory:   p.Inventory,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses maps a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for idx := range products {
		out = append(out, ToProductResponse(&products[idx]))
	}
	return out
}

// ToTagResponse maps a tag aggregate to its response
func ToTagResponse(t *catalog.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}

// ToTagResponses maps a slice of tags
func ToTagResponses(tags []catalog.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for idx := range tags {
		out = append(out, ToTagResponse(&tags[idx]))
	}
	return out
}
