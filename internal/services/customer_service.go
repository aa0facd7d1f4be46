package services

import (
	"context"
	"errors"

	"lojabase/internal/domain"
	"lojabase/internal/validate"
)

type CustomerService struct {
	Customers CustomerStore
	Hasher    PasswordHasher
}

func NewCustomerService(customers CustomerStore, hasher PasswordHasher) *CustomerService {
	return &CustomerService{Customers: customers, Hasher: hasher}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.CustomerSummary, error) {
	out, err := s.Customers.List(ctx)
	if err != nil {
		return nil, storeFault("list customers", err)
	}
	return out, nil
}

// Update overwrites name and email with the supplied values. The password is
// rehashed only when a non-empty one is supplied.
func (s *CustomerService) Update(ctx context.Context, id string, in domain.CustomerUpdate) (domain.CustomerSummary, error) {
	id, ok := validate.ID(id)
	if !ok {
		return domain.CustomerSummary{}, domain.ErrNotFound
	}
	var hash *string
	if in.Password != nil && *in.Password != "" {
		h, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return domain.CustomerSummary{}, err
		}
		hash = &h
	}
	out, err := s.Customers.Update(ctx, id, in.Name, in.Email, hash)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
		return domain.CustomerSummary{}, err
	}
	if err != nil {
		return domain.CustomerSummary{}, storeFault("update customer", err)
	}
	return out, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	id, ok := validate.ID(id)
	if !ok {
		return domain.ErrNotFound
	}
	err := s.Customers.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return storeFault("delete customer", err)
	}
	return err
}
