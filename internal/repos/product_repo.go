package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"lojabase/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT id, name, description, price
  FROM products
  ORDER BY created_at, id
`)
	return out, err
}

// Search lists products whose name contains q, ignoring case.
func (r *ProductRepo) Search(ctx context.Context, q string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
  SELECT id, name, description, price
  FROM products
  WHERE LOWER(name) LIKE ? ESCAPE '\'
  ORDER BY created_at, id
`), "%"+likeEscaper.Replace(strings.ToLower(q))+"%")
	return out, err
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Create assigns a new identifier and inserts the product.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
  INSERT INTO products(id, name, description, price, created_at)
  VALUES(?,?,?,?,?)
`), p.ID, p.Name, p.Description, p.Price, time.Now().UTC())
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update overwrites name, description and price in a single conditional write.
// It returns domain.ErrNotFound when no row has p.ID.
func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := r.db.GetContext(ctx, &out, r.db.Rebind(`
  UPDATE products
  SET name = ?, description = ?, price = ?, updated_at = ?
  WHERE id = ?
  RETURNING id, name, description, price
`), p.Name, p.Description, p.Price, time.Now().UTC(), p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return out, err
}

// Delete removes the product; domain.ErrNotFound when nothing was deleted.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
