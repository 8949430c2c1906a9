package persistence

import (
	"context"
	"fmt"
	"sync"
	"testing"

	apporder "github.com/retail/backend/internal/application/order"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/order"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbSeq int

// newTestDatabase opens a private in-memory database per test
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	dbSeq++
	cfg := &config.DatabaseConfig{
		Path: fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbSeq),
	}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func mustProduct(t *testing.T, name string, inventory int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.NewFromInt(10), inventory)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_RoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Keyboard", 10)
	require.NoError(t, repo.Save(ctx, product))
	assert.NotZero(t, product.ID)

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", loaded.Name)
	assert.Equal(t, int64(10), loaded.Inventory)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_IDsAreMonotonic(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	first := mustProduct(t, "First", 1)
	second := mustProduct(t, "Second", 1)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	// Deleting an entry never frees its id for reuse
	require.NoError(t, repo.Delete(ctx, second.ID))

	third := mustProduct(t, "Third", 1)
	require.NoError(t, repo.Save(ctx, third))

	assert.Greater(t, third.ID, second.ID)
}

func TestGormProductRepository_ReserveGuard(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Keyboard", 10)
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Reserve(ctx, product.ID, 7))

	err := repo.Reserve(ctx, product.ID, 7)
	assert.ErrorIs(t, err, shared.ErrInsufficientInventory)

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loaded.Inventory)

	assert.ErrorIs(t, repo.Reserve(ctx, 999, 1), shared.ErrNotFound)
}

func TestGormProductRepository_ConcurrentReserveNeverOverdraws(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Keyboard", 10)
	require.NoError(t, repo.Save(ctx, product))

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Reserve(ctx, product.ID, 1)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, shared.ErrInsufficientInventory)
		}
	}
	assert.Equal(t, 10, succeeded)

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), loaded.Inventory)
}

func TestGormTagRepository_DuplicateAndCascade(t *testing.T) {
	db := newTestDatabase(t)
	tags := NewGormTagRepository(db.DB)
	products := NewGormProductRepository(db.DB)
	ctx := context.Background()

	tag, err := catalog.NewTag("electronics")
	require.NoError(t, err)
	require.NoError(t, tags.Save(ctx, tag))

	duplicate, err := catalog.NewTag("electronics")
	require.NoError(t, err)
	assert.ErrorIs(t, tags.Save(ctx, duplicate), shared.ErrDuplicateName)

	count, err := tags.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Matching is case-sensitive: a differently cased name is a new tag
	other, err := catalog.NewTag("Electronics")
	require.NoError(t, err)
	require.NoError(t, tags.Save(ctx, other))

	product := mustProduct(t, "Keyboard", 5)
	require.NoError(t, products.Save(ctx, product))
	product.AddTag(*tag)
	require.NoError(t, products.ReplaceTags(ctx, product))

	byTag, err := products.FindByTag(ctx, tag.ID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, byTag, 1)

	require.NoError(t, tags.DeleteCascading(ctx, tag.ID))

	reloaded, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)
}

func TestGormProductRepository_DeleteClearsTagLinks(t *testing.T) {
	db := newTestDatabase(t)
	products := NewGormProductRepository(db.DB)
	tags := NewGormTagRepository(db.DB)
	ctx := context.Background()

	tag, err := catalog.NewTag("electronics")
	require.NoError(t, err)
	require.NoError(t, tags.Save(ctx, tag))

	product := mustProduct(t, "Keyboard", 5)
	require.NoError(t, products.Save(ctx, product))
	product.AddTag(*tag)
	require.NoError(t, products.ReplaceTags(ctx, product))

	require.NoError(t, products.Delete(ctx, product.ID))

	var linkCount int64
	require.NoError(t, db.DB.Raw(
		"SELECT COUNT(*) FROM product_tags WHERE product_id = ?", product.ID,
	).Scan(&linkCount).Error)
	assert.Zero(t, linkCount)

	// The tag itself survives
	_, err = tags.FindByID(ctx, tag.ID)
	require.NoError(t, err)
}

func TestGormCustomerRepository_NestedCollections(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormCustomerRepository(db.DB)
	ctx := context.Background()

	customer, err := party.NewCustomer("Ada Lovelace", "ada", "ada@example.com", "555-0100", "secret1")
	require.NoError(t, err)
	_, err = customer.AddAddress("12 Main St", "Springfield")
	require.NoError(t, err)
	_, err = customer.AddPaymentMethod("card", "tok_visa")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, customer))

	loaded, err := repo.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, loaded.Addresses, 1)
	require.Len(t, loaded.PaymentMethods, 1)
	assert.NotZero(t, loaded.Addresses[0].ID)

	// Removing an address persists through a full save
	require.NoError(t, loaded.RemoveAddress(loaded.Addresses[0].ID))
	require.NoError(t, repo.Save(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Addresses)
	assert.Len(t, reloaded.PaymentMethods, 1)
}

func TestGormCustomerRepository_DuplicateUsername(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormCustomerRepository(db.DB)
	ctx := context.Background()

	first, err := party.NewCustomer("Ada", "ada", "", "", "secret1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := party.NewCustomer("Other Ada", "ada", "", "", "secret2")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, second), shared.ErrDuplicateName)
}

func TestGormOrderRepository_LedgerQueries(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormOrderRepository(db.DB)
	ctx := context.Background()

	first, err := order.NewOrder(1)
	require.NoError(t, err)
	_, err = first.AddLine(10, "Keyboard", decimal.NewFromInt(50), 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := order.NewOrder(2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	third, err := order.NewOrder(1)
	require.NoError(t, err)
	_, err = third.AddLine(10, "Keyboard", decimal.NewFromInt(50), 1)
	require.NoError(t, err)
	require.NoError(t, third.Complete())
	require.NoError(t, repo.Save(ctx, third))

	mine, err := repo.FindByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, third.ID, mine[1].ID)
	require.Len(t, mine[0].Lines, 1)
	assert.Equal(t, int64(2), mine[0].Lines[0].Quantity)

	pending, err := repo.FindByStatus(ctx, order.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	completed, err := repo.FindByStatus(ctx, order.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	history, err := repo.FindByCustomerAndStatus(ctx, 1, order.OrderStatusCompleted)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, third.ID, history[0].ID)
	require.Len(t, history[0].Lines, 1)

	history, err = repo.FindByCustomerAndStatus(ctx, 2, order.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, history)

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := newTestDatabase(t)
	scope := NewGormTransactionScope(db.DB)
	products := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := mustProduct(t, "Keyboard", 10)
	require.NoError(t, products.Save(ctx, product))

	boom := fmt.Errorf("line rejected")
	err := scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		if err := repos.Products().Reserve(ctx, product.ID, 4); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The failed step undoes the reservation with the transaction
	loaded, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), loaded.Inventory)

	err = scope.Execute(ctx, func(repos apporder.TransactionalRepositories) error {
		return repos.Products().Reserve(ctx, product.ID, 4)
	})
	require.NoError(t, err)

	loaded, err = products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), loaded.Inventory)
}
