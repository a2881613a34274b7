package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Orders are written once and never updated.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByBuyer(ctx context.Context, buyerID string) ([]Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (id, buyer_id, products, payment, status, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
		RETURNING created_at
	`, o.ID, o.BuyerID, o.Products, o.Payment, o.Status).Scan(&o.CreatedAt)
}

func (r *PGRepo) ListByBuyer(ctx context.Context, buyerID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.id::text, o.buyer_id::text, u.name, o.products, o.payment, o.status, o.created_at
		FROM orders o JOIN users u ON u.id = o.buyer_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC
	`, buyerID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PGRepo) ListAll(ctx context.Context, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.id::text, o.buyer_id::text, u.name, o.products, o.payment, o.status, o.created_at
		FROM orders o JOIN users u ON u.id = o.buyer_id
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.BuyerName, &o.Products, &o.Payment, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
