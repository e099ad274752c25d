package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pos-service/internal/domain"
)

func TestCustomerService(t *testing.T) {
	customers := newFakeCustomerRepo()
	accounts := newFakeAccountRepo(customers)
	svc := NewCustomerService(customers, accounts)
	ctx := context.Background()

	customer := &domain.Customer{Name: gofakeit.Name(), Phone: gofakeit.Phone()}
	require.NoError(t, customers.Create(ctx, customer))

	got, err := svc.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Name, got.Name)

	address := gofakeit.Street()
	got.Address = &address
	require.NoError(t, svc.Update(ctx, got))

	updated, err := svc.Get(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Address)
	assert.Equal(t, address, *updated.Address)

	listed, err := svc.List(ctx, -1, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCustomerService_Accounts(t *testing.T) {
	customers := newFakeCustomerRepo()
	accounts := newFakeAccountRepo(customers)
	svc := NewCustomerService(customers, accounts)
	ctx := context.Background()

	customer := &domain.Customer{Name: "Eve", Phone: "555-0102"}
	require.NoError(t, customers.Create(ctx, customer))
	account := &domain.Account{CustomerID: customer.ID, UserName: "eve", PasswordHash: "x"}
	require.NoError(t, accounts.Create(ctx, account))

	listed, err := svc.ListAccounts(ctx, -1, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "eve", listed[0].UserName)

	require.NoError(t, svc.DeleteAccount(ctx, account.ID))
	assert.ErrorIs(t, svc.DeleteAccount(ctx, account.ID), pgx.ErrNoRows)

	// The customer profile survives account deletion.
	_, err = svc.Get(ctx, customer.ID)
	assert.NoError(t, err)
}
