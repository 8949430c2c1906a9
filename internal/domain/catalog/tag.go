package catalog

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
)

// Tag represents a label used to categorize products.
// Tag names are unique across the catalog, compared case-sensitively.
type Tag struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "tags"
}

// NewTag creates a new tag
func NewTag(name string) (*Tag, error) {
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	tag := &Tag{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}

	tag.AddDomainEvent(NewTagCreatedEvent(tag))

	return tag, nil
}

// Rename changes the tag name
func (t *Tag) Rename(name string) error {
	if err := validateTagName(name); err != nil {
		return err
	}

	t.Name = name
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

func validateTagName(name string) error {
	if name == "" {
		return shared.InvalidInputError("Tag name cannot be empty")
	}
	if len(name) > 100 {
		return shared.InvalidInputError("Tag name cannot exceed 100 characters")
	}
	return nil
}
