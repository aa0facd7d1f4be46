package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lojabase/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ DB *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// Create inserts c with a fresh identifier and creation time. The unique
// email index is the only duplicate check; a violation maps to
// domain.ErrDuplicateEmail.
func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx, r.DB.Rebind(`
  INSERT INTO customers(id, name, email, password_hash, created_at)
  VALUES(?,?,?,?,?)
`), c.ID, c.Name, c.Email, c.Hash, c.CreatedAt)
	if isUniqueViolation(err) {
		return domain.Customer{}, domain.ErrDuplicateEmail
	}
	if err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepo) ByEmail(ctx context.Context, email string) (domain.Customer, error) {
	var c domain.Customer
	err := r.DB.GetContext(ctx, &c, r.DB.Rebind(`
  SELECT id, name, email, password_hash, created_at
  FROM customers
  WHERE LOWER(email) = LOWER(?)
`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, err
}

// List selects summary columns only; the hash is never read.
func (r *CustomerRepo) List(ctx context.Context) ([]domain.CustomerSummary, error) {
	out := []domain.CustomerSummary{}
	err := r.DB.SelectContext(ctx, &out, `
  SELECT id, name, email, created_at
  FROM customers
  ORDER BY created_at, id
`)
	return out, err
}

// Update overwrites name and email. When hash is nil the stored hash is kept
// by the same statement.
func (r *CustomerRepo) Update(ctx context.Context, id, name, email string, hash *string) (domain.CustomerSummary, error) {
	var out domain.CustomerSummary
	err := r.DB.GetContext(ctx, &out, r.DB.Rebind(`
  UPDATE customers
  SET name = ?, email = ?, password_hash = COALESCE(?, password_hash), updated_at = ?
  WHERE id = ?
  RETURNING id, name, email, created_at
`), name, email, hash, time.Now().UTC(), id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.CustomerSummary{}, domain.ErrNotFound
	case isUniqueViolation(err):
		return domain.CustomerSummary{}, domain.ErrDuplicateEmail
	}
	return out, err
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(`DELETE FROM customers WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}
