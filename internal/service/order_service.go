package service

import (
	"context"

	"shop-admin/internal/apperr"
	"shop-admin/internal/domain"
	"shop-admin/internal/repository"
)

// OrderService implements the resource operations for orders. Writes carry
// foreign references, so create and update probe both referenced entities
// before touching the orders table.
type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

var _ Resource[domain.CreateOrder, domain.Order] = (*OrderService)(nil)

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

// checkReferences verifies both foreign references resolve to live rows,
// customer first. The first missing reference terminates the operation;
// the remaining probe is skipped. The store's foreign-key constraints back
// this up, so a reference deleted between check and write still surfaces
// as NotFound rather than a constraint error.
func (s *OrderService) checkReferences(ctx context.Context, in domain.CreateOrder) *apperr.Error {
	exists, err := s.customers.Exists(ctx, in.CustomerID)
	if err != nil {
		return apperr.Store(err)
	}
	if !exists {
		return apperr.NotFound()
	}

	exists, err = s.products.Exists(ctx, in.ProductID)
	if err != nil {
		return apperr.Store(err)
	}
	if !exists {
		return apperr.NotFound()
	}

	return nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, *apperr.Error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, *apperr.Error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, repository.ErrOrderNotFound)
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, in domain.CreateOrder) *apperr.Error {
	if aerr := s.checkReferences(ctx, in); aerr != nil {
		return aerr
	}

	if err := s.orders.Create(ctx, &in); err != nil {
		return classify(err, repository.ErrOrderReferenceMissing)
	}
	return nil
}

// Update re-validates both references, then replaces the mutable fields.
// A write that lands on zero rows is NotFound.
func (s *OrderService) Update(ctx context.Context, id int64, in domain.CreateOrder) *apperr.Error {
	if aerr := s.checkReferences(ctx, in); aerr != nil {
		return aerr
	}

	if err := s.orders.Update(ctx, id, &in); err != nil {
		return classify(err, repository.ErrOrderNotFound, repository.ErrOrderReferenceMissing)
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) *apperr.Error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return classify(err, repository.ErrOrderNotFound)
	}
	return nil
}

func (s *OrderService) DeleteMany(ctx context.Context, ids []int64) *apperr.Error {
	if aerr := requireIDs(ids); aerr != nil {
		return aerr
	}
	if err := s.orders.DeleteMany(ctx, ids); err != nil {
		return classify(err, repository.ErrOrderNotFound)
	}
	return nil
}
