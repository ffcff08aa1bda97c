package service

import (
	"context"

	"shop-admin/internal/apperr"
	"shop-admin/internal/domain"
	"shop-admin/internal/repository"
)

// ProductService implements the resource operations for products
type ProductService struct {
	repo repository.ProductRepository
}

var _ Resource[domain.CreateProduct, domain.Product] = (*ProductService)(nil)

// NewProductService creates a new instance of ProductService
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, *apperr.Error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, *apperr.Error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, repository.ErrProductNotFound)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, in domain.CreateProduct) *apperr.Error {
	if err := s.repo.Create(ctx, &in); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in domain.CreateProduct) *apperr.Error {
	if err := s.repo.Update(ctx, id, &in); err != nil {
		return classify(err, repository.ErrProductNotFound)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) *apperr.Error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify(err, repository.ErrProductNotFound)
	}
	return nil
}

func (s *ProductService) DeleteMany(ctx context.Context, ids []int64) *apperr.Error {
	if aerr := requireIDs(ids); aerr != nil {
		return aerr
	}
	if err := s.repo.DeleteMany(ctx, ids); err != nil {
		return classify(err, repository.ErrProductNotFound)
	}
	return nil
}
