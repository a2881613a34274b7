// Package category stores the product categories.
package category

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/shop-ecom/internal/db"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category already exists")
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Rename(ctx context.Context, id, name string) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (id, name, slug, created_at)
		VALUES ($1,$2,$3,NOW())
		RETURNING created_at
	`, c.ID, c.Name, c.Slug).Scan(&c.CreatedAt)
	if db.IsUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

func (r *PGRepo) Rename(ctx context.Context, id, name string) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET name = $2, slug = $3
		WHERE id = $1
		RETURNING id, name, slug, created_at
	`, id, name, Slugify(name)).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows), db.IsInvalidText(err):
		return nil, ErrNotFound
	case db.IsUniqueViolation(err):
		return nil, ErrAlreadyExists
	case err != nil:
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, `
		SELECT id, name, slug, created_at FROM categories
		WHERE slug = $1
		ORDER BY created_at
		LIMIT 1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if db.IsInvalidText(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
