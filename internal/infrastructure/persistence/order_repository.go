package persistence

import (
	"context"
	"errors"

	"github.com/retail/backend/internal/domain/order"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Reads
// preload the line items ordered by id, which preserves insertion
// order.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_lines.id ASC")
	})
}

// FindByID finds an order with its lines
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := preloadLines(r.db.WithContext(ctx)).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll finds all orders matching the filter, oldest first by default
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := applyFilter(preloadLines(r.db.WithContext(ctx)).Model(&order.Order{}), filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomer finds all orders owned by the customer, oldest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]order.Order, error) {
	var orders []order.Order
	if err := preloadLines(r.db.WithContext(ctx)).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus finds all orders in the given status, oldest first
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.OrderStatus) ([]order.Order, error) {
	var orders []order.Order
	if err := preloadLines(r.db.WithContext(ctx)).
		Where("status = ?", status).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomerAndStatus finds the customer's orders in the given
// status, oldest first
func (r *GormOrderRepository) FindByCustomerAndStatus(ctx context.Context, customerID int64, status order.OrderStatus) ([]order.Order, error) {
	var orders []order.Order
	if err := preloadLines(r.db.WithContext(ctx)).
		Where("customer_id = ? AND status = ?", customerID, status).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order with its lines
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(o).Error
}

// Delete removes an order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&order.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&order.OrderLine{}, "order_id = ?", id).Error
	})
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.CountAll(ctx)
}

// CountAll counts every order in the ledger
func (r *GormOrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ order.OrderRepository = (*GormOrderRepository)(nil)
