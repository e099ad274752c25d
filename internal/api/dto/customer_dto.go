package dto

import (
	"time"

	"github.com/spec-kit/pos-service/internal/domain"
)

// CustomerUpdateRequest payload for profile updates.
type CustomerUpdateRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// CustomerResponse mirrors a customer row.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomerResponse maps a domain customer.
func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
	}
}

// NewCustomerResponses maps a customer slice.
func NewCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomerResponse(&customers[i]))
	}
	return out
}

// AccountResponse is the admin account listing row.
type AccountResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	UserName      string  `json:"userName"`
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
}

// NewAccountResponses maps an account listing.
func NewAccountResponses(accounts []domain.AccountWithCustomer) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountResponse{
			ID:            account.ID,
			CustomerID:    account.CustomerID,
			UserName:      account.UserName,
			CustomerName:  account.CustomerName,
			CustomerPhone: account.CustomerPhone,
		})
	}
	return out
}
