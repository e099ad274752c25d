package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
)

// In-memory repository doubles. They mimic the pgx-backed implementations
// closely enough for service tests: missing rows surface as pgx.ErrNoRows
// and Create assigns sequential IDs.

type fakeCustomerRepo struct {
	nextID    int64
	customers map[int64]domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]domain.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCustomerRepo) List(context.Context, int, int) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type fakeAccountRepo struct {
	nextID    int64
	accounts  map[int64]domain.Account
	customers *fakeCustomerRepo
}

func newFakeAccountRepo(customers *fakeCustomerRepo) *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int64]domain.Account{}, customers: customers}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.nextID++
	a.ID = r.nextID
	r.accounts[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) GetByUserName(_ context.Context, userName string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.UserName == userName {
			out := a
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) GetProfile(_ context.Context, accountID int64) (*domain.AccountProfile, error) {
	a, ok := r.accounts[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	c, ok := r.customers.customers[a.CustomerID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.AccountProfile{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		UserName:        a.UserName,
		CustomerName:    c.Name,
		CustomerPhone:   c.Phone,
		CustomerAddress: c.Address,
	}, nil
}

func (r *fakeAccountRepo) List(context.Context, int, int) ([]domain.AccountWithCustomer, error) {
	out := make([]domain.AccountWithCustomer, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, domain.AccountWithCustomer{ID: a.ID, CustomerID: a.CustomerID, UserName: a.UserName})
	}
	return out, nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

type fakeCategoryRepo struct {
	nextID     int64
	categories map[int64]domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]domain.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCategoryRepo) List(context.Context, int, int) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]domain.ProductWithCategory
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]domain.ProductWithCategory{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = domain.ProductWithCategory{ID: p.ID, Name: p.Name, Price: p.Price, CategoryID: p.CategoryID}
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.products[p.ID] = domain.ProductWithCategory{ID: p.ID, Name: p.Name, Price: p.Price, CategoryID: p.CategoryID}
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.ProductWithCategory, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *fakeProductRepo) List(context.Context, *int64, int, int) ([]domain.ProductWithCategory, error) {
	out := make([]domain.ProductWithCategory, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) PricesByID(_ context.Context, ids []int64) (map[int64]int64, error) {
	prices := make(map[int64]int64, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			prices[id] = p.Price
		}
	}
	return prices, nil
}

type fakeOrderRepo struct {
	nextID int64
	orders map[int64]domain.Order
	items  map[int64][]domain.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]domain.Order{}, items: map[int64][]domain.OrderItem{}}
}

func (r *fakeOrderRepo) CreateWithItems(_ context.Context, order *domain.Order, items []domain.OrderItem) error {
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = *order
	stored := make([]domain.OrderItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].OrderID = order.ID
		stored[i].ID = int64(i + 1)
	}
	r.items[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, customerID *int64, _, _ int) ([]domain.OrderSummary, error) {
	out := []domain.OrderSummary{}
	for _, o := range r.orders {
		if customerID != nil && o.CustomerID != *customerID {
			continue
		}
		out = append(out, domain.OrderSummary{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			TotalPrice: o.TotalPrice,
			IsDelivery: o.IsDelivery,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &o, nil
}

func (r *fakeOrderRepo) GetDetail(_ context.Context, id int64) (*domain.OrderDetail, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	detail := &domain.OrderDetail{
		OrderSummary: domain.OrderSummary{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			TotalPrice: o.TotalPrice,
			IsDelivery: o.IsDelivery,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		},
	}
	for _, item := range r.items[id] {
		detail.Items = append(detail.Items, domain.OrderItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return detail, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, id int64, patch repository.OrderPatch) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.IsDelivery != nil {
		o.IsDelivery = *patch.IsDelivery
	}
	r.orders[id] = o
	return &o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

// capturingDispatcher records published events for assertions.
type capturingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *capturingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}
