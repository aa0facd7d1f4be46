package services

import (
	"context"
	"errors"

	"lojabase/internal/domain"
	"lojabase/internal/validate"
)

type CatalogService struct {
	Prods ProductStore
}

func NewCatalogService(prods ProductStore) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out, err := s.Prods.List(ctx)
	if err != nil {
		return nil, storeFault("list products", err)
	}
	return out, nil
}

// SearchProducts filters the catalog by a name fragment. An unusable term is
// domain.ErrInvalidInput.
func (s *CatalogService) SearchProducts(ctx context.Context, q string) ([]domain.Product, error) {
	q, ok := validate.Query(q)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	out, err := s.Prods.Search(ctx, q)
	if err != nil {
		return nil, storeFault("search products", err)
	}
	return out, nil
}

// CreateProduct requires name, description and a non-zero price.
func (s *CatalogService) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	name, okName := validate.Required(in.Name)
	desc, okDesc := validate.Required(in.Description)
	price, okPrice := validate.Price(in.Price)
	if !okName || !okDesc || !okPrice {
		return domain.Product{}, domain.ErrInvalidInput
	}
	p, err := s.Prods.Create(ctx, domain.Product{Name: name, Description: desc, Price: price})
	if err != nil {
		return domain.Product{}, storeFault("create product", err)
	}
	return p, nil
}

// UpdateProduct replaces all three fields with whatever was supplied; absent
// fields are written as their zero value.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	id, ok := validate.ID(id)
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	p := domain.Product{ID: id, Name: in.Name, Description: in.Description}
	if in.Price != nil {
		p.Price = *in.Price
	}
	out, err := s.Prods.Update(ctx, p)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Product{}, err
	}
	if err != nil {
		return domain.Product{}, storeFault("update product", err)
	}
	return out, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	id, ok := validate.ID(id)
	if !ok {
		return domain.ErrNotFound
	}
	err := s.Prods.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return storeFault("delete product", err)
	}
	return err
}
