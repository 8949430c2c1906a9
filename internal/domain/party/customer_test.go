package party

import (
	"testing"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCustomer(t *testing.T) *Customer {
	customer, err := NewCustomer("Ana Lopez", "analopez", "ana@example.com", "555-0101", "secret123")
	require.NoError(t, err)
	customer.ID = 1
	return customer
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		customer := createTestCustomer(t)
		assert.Equal(t, "analopez", customer.Username)
		assert.Equal(t, "ana@example.com", customer.Email)
		assert.NotEqual(t, "secret123", customer.PasswordHash)
		assert.True(t, customer.VerifyPassword("secret123"))
		assert.False(t, customer.VerifyPassword("wrong"))
	})

	t.Run("username is normalized", func(t *testing.T) {
		customer, err := NewCustomer("Ana", "  AnaLopez  ", "", "", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "analopez", customer.Username)
	})

	t.Run("empty name fails", func(t *testing.T) {
		_, err := NewCustomer("", "user1", "", "", "secret123")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("short password fails", func(t *testing.T) {
		_, err := NewCustomer("Ana", "user1", "", "", "123")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("bad email fails", func(t *testing.T) {
		_, err := NewCustomer("Ana", "user1", "nonsense", "", "secret123")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestCustomer_UpdateProfile(t *testing.T) {
	customer := createTestCustomer(t)

	require.NoError(t, customer.UpdateProfile("Ana Maria", "ana.maria@example.com", "555-0202"))
	assert.Equal(t, "Ana Maria", customer.Name)
	assert.Equal(t, "ana.maria@example.com", customer.Email)
	assert.Equal(t, "555-0202", customer.Phone)

	assert.ErrorIs(t, customer.UpdateProfile("", "a@b.co", "1"), shared.ErrInvalidInput)
	assert.ErrorIs(t, customer.UpdateProfile("Ana", "", "1"), shared.ErrInvalidInput)
	assert.ErrorIs(t, customer.UpdateProfile("Ana", "a@b.co", ""), shared.ErrInvalidInput)
}

func TestCustomer_AddressRoundTrip(t *testing.T) {
	customer := createTestCustomer(t)

	addr, err := customer.AddAddress("Main St", "Springfield")
	require.NoError(t, err)
	addr.ID = 1
	customer.Addresses[0].ID = 1

	require.NoError(t, customer.EditAddress(1, "Elm St", "Shelbyville"))

	got := customer.GetAddress(1)
	require.NotNil(t, got)
	assert.Equal(t, "Elm St", got.Street)
	assert.Equal(t, "Shelbyville", got.City)
	assert.Len(t, customer.Addresses, 1)
}

func TestCustomer_EditAddress_NotFound(t *testing.T) {
	customer := createTestCustomer(t)
	err := customer.EditAddress(99, "Elm St", "Shelbyville")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomer_RemoveAddress(t *testing.T) {
	customer := createTestCustomer(t)
	_, err := customer.AddAddress("Main St", "Springfield")
	require.NoError(t, err)
	customer.Addresses[0].ID = 1

	require.NoError(t, customer.RemoveAddress(1))
	assert.Empty(t, customer.Addresses)

	assert.ErrorIs(t, customer.RemoveAddress(1), shared.ErrNotFound)
}

func TestCustomer_AddAddress_Validation(t *testing.T) {
	customer := createTestCustomer(t)

	_, err := customer.AddAddress("", "Springfield")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	_, err = customer.AddAddress("Main St", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestCustomer_PaymentMethods(t *testing.T) {
	customer := createTestCustomer(t)

	_, err := customer.AddPaymentMethod("card", "****4242")
	require.NoError(t, err)
	customer.PaymentMethods[0].ID = 1

	require.NoError(t, customer.EditPaymentMethod(1, "****1111"))
	assert.Equal(t, "****1111", customer.PaymentMethods[0].Data)

	assert.ErrorIs(t, customer.EditPaymentMethod(99, "x"), shared.ErrNotFound)
}

func TestCustomer_MarkPaymentMethodDeleted(t *testing.T) {
	customer := createTestCustomer(t)
	_, err := customer.AddPaymentMethod("card", "****4242")
	require.NoError(t, err)
	customer.PaymentMethods[0].ID = 1

	require.NoError(t, customer.MarkPaymentMethodDeleted(1))

	// Soft delete: the entry keeps its id and stays addressable
	method := customer.GetPaymentMethod(1)
	require.NotNil(t, method)
	assert.Equal(t, PaymentMethodStatusDeleted, method.Status)
	assert.True(t, method.IsDeleted())
	assert.Len(t, customer.PaymentMethods, 1)

	// Editing a deleted method is rejected
	err = customer.EditPaymentMethod(1, "****9999")
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestNewPaymentMethod_Validation(t *testing.T) {
	_, err := NewPaymentMethod(1, "", "data")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
