package services

import (
	"context"
	"fmt"

	"lojabase/internal/domain"
)

// ProductStore is the persistence port for products. Update and Delete must
// return domain.ErrNotFound when the identifier does not exist.
type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, q string) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CustomerStore is the persistence port for customers. Create and Update
// return domain.ErrDuplicateEmail on an email collision.
type CustomerStore interface {
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	ByEmail(ctx context.Context, email string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.CustomerSummary, error)
	Update(ctx context.Context, id, name, email string, hash *string) (domain.CustomerSummary, error)
	Delete(ctx context.Context, id string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(customerID, email string) (string, error)
}

// storeFault tags an unexpected store error so callers can map it to a 500
// without seeing driver details.
func storeFault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreFault, op, err)
}
