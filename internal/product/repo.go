// File: internal/product/repo.go
// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-ecom/internal/category"
	"github.com/MikeMC777/shop-ecom/internal/db"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	// Update replaces every field; the stored photo is kept unless p.Photo is set.
	Update(ctx context.Context, p *Product) error
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetPhoto(ctx context.Context, id string) (*Photo, error)
	List(ctx context.Context, q Query) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectColumns = `
		SELECT p.id::text, p.name, p.slug, p.description, p.price::text,
		       COALESCE(p.category_id::text, ''), p.quantity, p.shipping,
		       p.photo_data IS NOT NULL, p.created_at, p.updated_at,
		       c.id::text, c.name, c.slug, c.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var data []byte
	var ct *string
	if p.Photo != nil {
		data, ct = p.Photo.Data, &p.Photo.ContentType
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, slug, description, price, category_id, quantity, shipping,
		                      photo_data, photo_content_type, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Slug, p.Description, p.Price.String(), p.CategoryID, p.Quantity, p.Shipping,
		data, ct).Scan(&p.CreatedAt, &p.UpdatedAt)
	if db.IsForeignKeyViolation(err) || db.IsInvalidText(err) {
		return ErrCategoryNotFound
	}
	return err
}

func (r *PGRepo) Update(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row pgx.Row
	if p.Photo != nil {
		row = r.db.QueryRow(ctx, `
			UPDATE products
			SET name = $2, slug = $3, description = $4, price = $5, category_id = $6,
			    quantity = $7, shipping = $8,
			    photo_data = $9, photo_content_type = $10,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at, photo_data IS NOT NULL
		`, p.ID, p.Name, p.Slug, p.Description, p.Price.String(), p.CategoryID, p.Quantity, p.Shipping,
			p.Photo.Data, p.Photo.ContentType)
	} else {
		row = r.db.QueryRow(ctx, `
			UPDATE products
			SET name = $2, slug = $3, description = $4, price = $5, category_id = $6,
			    quantity = $7, shipping = $8,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at, photo_data IS NOT NULL
		`, p.ID, p.Name, p.Slug, p.Description, p.Price.String(), p.CategoryID, p.Quantity, p.Shipping)
	}

	err := row.Scan(&p.CreatedAt, &p.UpdatedAt, &p.HasPhoto)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case db.IsForeignKeyViolation(err):
		return ErrCategoryNotFound
	case db.IsInvalidText(err):
		// either id or category is not a uuid; neither can exist
		return ErrNotFound
	}
	return err
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, selectColumns+`
		WHERE p.slug = $1
		ORDER BY p.created_at DESC
		LIMIT 1
	`, slug)
	p, err := scanProduct(row, true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPhoto returns a Photo with nil Data when the product has none.
func (r *PGRepo) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ph Photo
	err := r.db.QueryRow(ctx, `
		SELECT photo_data, COALESCE(photo_content_type, '')
		FROM products WHERE id = $1
	`, id).Scan(&ph.Data, &ph.ContentType)
	if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ph, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sql, args := q.sql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows, q.Populate)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Count is the planner's estimate; an exact count is used until the table has been analyzed.
func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n float64
	if err := r.db.QueryRow(ctx, `
		SELECT reltuples FROM pg_class WHERE oid = 'products'::regclass
	`).Scan(&n); err != nil {
		return 0, err
	}
	if n >= 0 {
		return int64(n), nil
	}
	var exact int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&exact)
	return exact, err
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if db.IsInvalidText(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row, populate bool) (*Product, error) {
	var (
		p        Product
		price    string
		catID    *string
		catName  *string
		catSlug  *string
		catSince *time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &price,
		&p.CategoryID, &p.Quantity, &p.Shipping,
		&p.HasPhoto, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug, &catSince); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	if populate && catID != nil {
		p.Category = &category.Category{ID: *catID, Name: deref(catName), Slug: deref(catSlug)}
		if catSince != nil {
			p.Category.CreatedAt = *catSince
		}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
