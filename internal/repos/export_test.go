package repos

import (
	"context"
	"database/sql"
	"errors"

	"lojabase/internal/domain"
)

// Lookups used by tests to inspect what the stores wrote.

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`
  SELECT id, name, description, price
  FROM products
  WHERE id = ?
`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

func (r *CustomerRepo) ByID(ctx context.Context, id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.DB.GetContext(ctx, &c, r.DB.Rebind(`
  SELECT id, name, email, password_hash, created_at
  FROM customers
  WHERE id = ?
`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, err
}

// CountByEmail counts customers using email, ignoring case.
func (r *CustomerRepo) CountByEmail(ctx context.Context, email string) (int, error) {
	var n int
	err := r.DB.GetContext(ctx, &n, r.DB.Rebind(`SELECT COUNT(*) FROM customers WHERE LOWER(email) = LOWER(?)`), email)
	return n, err
}
