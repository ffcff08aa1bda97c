package transport

import (
	"context"
	"sort"

	"shop-admin/internal/domain"
	"shop-admin/internal/repository"
)

// Mock repositories backing the handler tests

type mockCustomerRepository struct {
	customers map[int64]domain.Customer
	nextID    int64
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{customers: make(map[int64]domain.Customer), nextID: 1}
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *mockCustomerRepository) Create(ctx context.Context, in *domain.CreateCustomer) error {
	m.customers[m.nextID] = domain.Customer{ID: m.nextID, Name: in.Name, Email: in.Email, Address: in.Address}
	m.nextID++
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, id int64, in *domain.CreateCustomer) error {
	if _, ok := m.customers[id]; !ok {
		return repository.ErrCustomerNotFound
	}
	m.customers[id] = domain.Customer{ID: id, Name: in.Name, Email: in.Email, Address: in.Address}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.customers[id]; !ok {
		return repository.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepository) DeleteMany(ctx context.Context, ids []int64) error {
	removed := 0
	for _, id := range ids {
		if _, ok := m.customers[id]; ok {
			delete(m.customers, id)
			removed++
		}
	}
	if removed == 0 {
		return repository.ErrCustomerNotFound
	}
	return nil
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.customers[id]
	return ok, nil
}

type mockProductRepository struct {
	products map[int64]domain.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]domain.Product), nextID: 1}
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductRepository) Create(ctx context.Context, in *domain.CreateProduct) error {
	m.products[m.nextID] = domain.Product{
		ID: m.nextID, Name: in.Name, Description: in.Description, Price: in.Price, InStock: in.InStock,
	}
	m.nextID++
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, id int64, in *domain.CreateProduct) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[id] = domain.Product{
		ID: id, Name: in.Name, Description: in.Description, Price: in.Price, InStock: in.InStock,
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) DeleteMany(ctx context.Context, ids []int64) error {
	removed := 0
	for _, id := range ids {
		if _, ok := m.products[id]; ok {
			delete(m.products, id)
			removed++
		}
	}
	if removed == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}

func (m *mockProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.products[id]
	return ok, nil
}

type mockOrderRepository struct {
	orders map[int64]domain.Order
	nextID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[int64]domain.Order), nextID: 1}
}

func (m *mockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return &o, nil
}

func (m *mockOrderRepository) Create(ctx context.Context, in *domain.CreateOrder) error {
	m.orders[m.nextID] = domain.Order{
		ID: m.nextID, CustomerID: in.CustomerID, ProductID: in.ProductID, Quantity: in.Quantity, OrderDate: in.OrderDate,
	}
	m.nextID++
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, id int64, in *domain.CreateOrder) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	m.orders[id] = domain.Order{
		ID: id, CustomerID: in.CustomerID, ProductID: in.ProductID, Quantity: in.Quantity, OrderDate: in.OrderDate,
	}
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepository) DeleteMany(ctx context.Context, ids []int64) error {
	removed := 0
	for _, id := range ids {
		if _, ok := m.orders[id]; ok {
			delete(m.orders, id)
			removed++
		}
	}
	if removed == 0 {
		return repository.ErrOrderNotFound
	}
	return nil
}
