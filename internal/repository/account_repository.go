package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pos-service/internal/domain"
)

// AccountRepository defines persistence access for login accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUserName(ctx context.Context, userName string) (*domain.Account, error)
	GetProfile(ctx context.Context, accountID int64) (*domain.AccountProfile, error)
	List(ctx context.Context, limit, offset int) ([]domain.AccountWithCustomer, error)
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (customer_id, user_name, password)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		account.CustomerID,
		account.UserName,
		account.PasswordHash,
	).Scan(&account.ID)
}

func (r *accountRepository) GetByUserName(ctx context.Context, userName string) (*domain.Account, error) {
	const query = `
        SELECT id, customer_id, user_name, password
        FROM accounts WHERE user_name=$1`

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, userName).Scan(
		&account.ID,
		&account.CustomerID,
		&account.UserName,
		&account.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetProfile(ctx context.Context, accountID int64) (*domain.AccountProfile, error) {
	const query = `
        SELECT a.id, a.customer_id, a.user_name, c.name, c.phone, c.address
        FROM accounts a
        INNER JOIN customers c ON a.customer_id = c.id
        WHERE a.id=$1`

	var profile domain.AccountProfile
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&profile.ID,
		&profile.CustomerID,
		&profile.UserName,
		&profile.CustomerName,
		&profile.CustomerPhone,
		&profile.CustomerAddress,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *accountRepository) List(ctx context.Context, limit, offset int) ([]domain.AccountWithCustomer, error) {
	query := `
        SELECT a.id, a.customer_id, a.user_name, c.name, c.phone
        FROM accounts a
        LEFT JOIN customers c ON a.customer_id = c.id
        ORDER BY a.id`
	query += pageClause(limit, offset)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.AccountWithCustomer, 0)
	for rows.Next() {
		var account domain.AccountWithCustomer
		if err := rows.Scan(
			&account.ID,
			&account.CustomerID,
			&account.UserName,
			&account.CustomerName,
			&account.CustomerPhone,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
