package party

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/retail/backend/internal/domain/party"
	"github.com/retail/backend/internal/domain/shared"
)

// CustomerService handles customer account and profile operations
type CustomerService struct {
	customers      party.CustomerRepository
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers party.CustomerRepository) *CustomerService {
	return &CustomerService{
		customers: customers,
		validate:  validator.New(),
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CustomerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Register creates a new customer account. Usernames are unique across
// the directory.
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	existing, err := s.customers.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicateName
	}

	customer, err := party.NewCustomer(req.Name, req.Username, req.Email, req.Phone, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Get retrieves a customer with the address book and payment methods
func (s *CustomerService) Get(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves all customers in registration order
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// UpdateProfile updates a customer's name, email and phone
func (s *CustomerService) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*CustomerResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.UpdateProfile(req.Name, req.Email, req.Phone); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// DeleteAccount removes a customer account. The customer confirms with
// their password; a wrong password leaves the account untouched.
func (s *CustomerService) DeleteAccount(ctx context.Context, id int64, password string) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !customer.VerifyPassword(password) {
		return shared.ErrInvalidCredentials
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	customer.AddDomainEvent(party.NewCustomerDeletedEvent(customer))
	s.publishEvents(ctx, customer)

	return nil
}

// Remove deletes a customer account without password confirmation.
// Reserved for back office use.
func (s *CustomerService) Remove(ctx context.Context, id int64) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	customer.AddDomainEvent(party.NewCustomerDeletedEvent(customer))
	s.publishEvents(ctx, customer)

	return nil
}

// AddAddress appends an address to the customer's address book
func (s *CustomerService) AddAddress(ctx context.Context, customerID int64, req AddressRequest) (*AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if _, err := customer.AddAddress(req.Street, req.City); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	// The store assigns the id into the saved entry, not the detached value
	response := ToAddressResponse(&customer.Addresses[len(customer.Addresses)-1])
	return &response, nil
}

// EditAddress updates an address book entry in place. The entry keeps
// its id.
func (s *CustomerService) EditAddress(ctx context.Context, customerID, addressID int64, req AddressRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return shared.InvalidInputError(err.Error())
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := customer.EditAddress(addressID, req.Street, req.City); err != nil {
		return err
	}

	return s.customers.Save(ctx, customer)
}

// RemoveAddress deletes an address book entry
func (s *CustomerService) RemoveAddress(ctx context.Context, customerID, addressID int64) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := customer.RemoveAddress(addressID); err != nil {
		return err
	}

	return s.customers.Save(ctx, customer)
}

// Addresses returns the customer's address book in insertion order
func (s *CustomerService) Addresses(ctx context.Context, customerID int64) ([]AddressResponse, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]AddressResponse, 0, len(customer.Addresses))
	for idx := range customer.Addresses {
		out = append(out, ToAddressResponse(&customer.Addresses[idx]))
	}
	return out, nil
}

// AddPaymentMethod appends a payment method to the customer's list
func (s *CustomerService) AddPaymentMethod(ctx context.Context, customerID int64, req PaymentMethodRequest) (*PaymentMethodResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.InvalidInputError(err.Error())
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if _, err := customer.AddPaymentMethod(req.Type, req.Data); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(&customer.PaymentMethods[len(customer.PaymentMethods)-1])
	return &response, nil
}

// EditPaymentMethod replaces the stored data of a payment method.
// Soft-deleted methods cannot be edited.
func (s *CustomerService) EditPaymentMethod(ctx context.Context, customerID, paymentID int64, data string) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := customer.EditPaymentMethod(paymentID, data); err != nil {
		return err
	}

	return s.customers.Save(ctx, customer)
}

// RemovePaymentMethod soft-deletes a payment method. The record stays
// addressable so existing order references keep resolving.
func (s *CustomerService) RemovePaymentMethod(ctx context.Context, customerID, paymentID int64) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if err := customer.MarkPaymentMethodDeleted(paymentID); err != nil {
		return err
	}

	return s.customers.Save(ctx, customer)
}

// PaymentMethods returns the customer's payment methods, soft-deleted
// entries included
func (s *CustomerService) PaymentMethods(ctx context.Context, customerID int64) ([]PaymentMethodResponse, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentMethodResponse, 0, len(customer.PaymentMethods))
	for idx := range customer.PaymentMethods {
		out = append(out, ToPaymentMethodResponse(&customer.PaymentMethods[idx]))
	}
	return out, nil
}

func (s *CustomerService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, aggregate.GetDomainEvents()...)
	aggregate.ClearDomainEvents()
}
