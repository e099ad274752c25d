package service

import (
	"context"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/repository"
)

// CustomerService administers customer profiles and their accounts.
type CustomerService struct {
	customers repository.CustomerRepository
	accounts  repository.AccountRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, accounts repository.AccountRepository) *CustomerService {
	return &CustomerService{customers: customers, accounts: accounts}
}

// List returns customer profiles, optionally paged.
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	return s.customers.List(ctx, limit, offset)
}

// Get fetches one customer profile.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Update rewrites a customer's name, phone and address.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	return s.customers.Update(ctx, customer)
}

// ListAccounts returns accounts joined with customer contact details.
func (s *CustomerService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.AccountWithCustomer, error) {
	return s.accounts.List(ctx, limit, offset)
}

// DeleteAccount removes a login account, leaving the customer profile.
func (s *CustomerService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accounts.Delete(ctx, id)
}
