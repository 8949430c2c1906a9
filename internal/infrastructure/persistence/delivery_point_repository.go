package persistence

import (
	"context"
	"errors"

	"github.com/retail/backend/internal/domain/delivery"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDeliveryPointRepository implements DeliveryPointRepository using GORM
type GormDeliveryPointRepository struct {
	db *gorm.DB
}

// NewGormDeliveryPointRepository creates a new GormDeliveryPointRepository
func NewGormDeliveryPointRepository(db *gorm.DB) *GormDeliveryPointRepository {
	return &GormDeliveryPointRepository{db: db}
}

// FindByID finds a delivery point by its ID
func (r *GormDeliveryPointRepository) FindByID(ctx context.Context, id int64) (*delivery.DeliveryPoint, error) {
	var point delivery.DeliveryPoint
	if err := r.db.WithContext(ctx).First(&point, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &point, nil
}

// FindAll finds all delivery points matching the filter
func (r *GormDeliveryPointRepository) FindAll(ctx context.Context, filter shared.Filter) ([]delivery.DeliveryPoint, error) {
	var points []delivery.DeliveryPoint
	query := applyFilter(r.db.WithContext(ctx).Model(&delivery.DeliveryPoint{}), filter)

	if err := query.Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// Save creates or updates a delivery point
func (r *GormDeliveryPointRepository) Save(ctx context.Context, point *delivery.DeliveryPoint) error {
	return r.db.WithContext(ctx).Save(point).Error
}

// Delete removes a delivery point
func (r *GormDeliveryPointRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&delivery.DeliveryPoint{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts delivery points
func (r *GormDeliveryPointRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&delivery.DeliveryPoint{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ delivery.DeliveryPointRepository = (*GormDeliveryPointRepository)(nil)
