package service

import (
	"context"

	"shop-admin/internal/apperr"
	"shop-admin/internal/domain"
	"shop-admin/internal/repository"
)

// CustomerService implements the resource operations for customers
type CustomerService struct {
	repo repository.CustomerRepository
}

var _ Resource[domain.CreateCustomer, domain.Customer] = (*CustomerService)(nil)

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, *apperr.Error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, *apperr.Error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, repository.ErrCustomerNotFound)
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, in domain.CreateCustomer) *apperr.Error {
	if err := s.repo.Create(ctx, &in); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// Update confirms the target id exists before writing, then replaces the
// mutable fields. A write that lands on zero rows is still NotFound.
func (s *CustomerService) Update(ctx context.Context, id int64, in domain.CreateCustomer) *apperr.Error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return apperr.Store(err)
	}
	if !exists {
		return apperr.NotFound()
	}

	if err := s.repo.Update(ctx, id, &in); err != nil {
		return classify(err, repository.ErrCustomerNotFound)
	}
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) *apperr.Error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(err, repository.ErrCustomerNotFound)
	}
	return nil
}

func (s *CustomerService) DeleteMany(ctx context.Context, ids []int64) *apperr.Error {
	if aerr := requireIDs(ids); aerr != nil {
		return aerr
	}
	if err := s.repo.DeleteMany(ctx, ids); err != nil {
		return classify(err, repository.ErrCustomerNotFound)
	}
	return nil
}
