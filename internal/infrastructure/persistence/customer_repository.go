package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
// Reads preload the address book and payment method list so the
// aggregate always comes back whole.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer with nested collections
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*party.Customer, error) {
	var customer party.Customer
	if err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("PaymentMethods").
		First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]party.Customer, error) {
	var customers []party.Customer
	query := applyFilter(
		r.db.WithContext(ctx).Model(&party.Customer{}).
			Preload("Addresses").
			Preload("PaymentMethods"),
		filter,
	)

	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByUsername finds a customer by username
func (r *GormCustomerRepository) FindByUsername(ctx context.Context, username string) (*party.Customer, error) {
	var customer party.Customer
	if err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("PaymentMethods").
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Save creates or updates a customer with its nested collections.
// Address removals are applied by replacing the association set.
func (r *GormCustomerRepository) Save(ctx context.Context, customer *party.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return shared.ErrDuplicateName
			}
			return err
		}
		if err := tx.Model(customer).Association("Addresses").Unscoped().Replace(customer.Addresses); err != nil {
			return err
		}
		return tx.Model(customer).Association("PaymentMethods").Unscoped().Replace(customer.PaymentMethods)
	})
}

// Delete removes a customer and its nested collections
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&party.Customer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Delete(&party.Address{}, "customer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&party.PaymentMethod{}, "customer_id = ?", id).Error
	})
}

// Count counts customers
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&party.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ party.CustomerRepository = (*GormCustomerRepository)(nil)
