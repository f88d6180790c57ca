package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/internal/domain/repository"
)

// CartRepository stores one row per (user, product) pair. product_id is a
// weak reference without a foreign key: rows pointing at deleted products
// survive until the next read prunes them.
type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) AddItem(userID, productID string, quantity int) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
	`, userID, productID, quantity)
	return err
}

func (r *CartRepository) SetQuantity(userID, productID string, quantity int) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $3, updated_at = now()
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID, quantity)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *CartRepository) RemoveItem(userID, productID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

func (r *CartRepository) List(userID string) ([]entity.CartEntry, error) {
	ctx := context.Background()

	// Lazy pruning: drop rows whose product disappeared from the catalog.
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items ci
		WHERE ci.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM products p WHERE p.id = ci.product_id)
	`, userID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ci.product_id, p.title, p.design_number, p.media, p.total_stock, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.CartEntry, 0)
	for rows.Next() {
		var e entity.CartEntry
		if err := rows.Scan(&e.ProductID, &e.Title, &e.DesignNumber, &e.Media, &e.TotalStock, &e.Quantity); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *CartRepository) Clear(userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items WHERE user_id = $1
	`, userID)
	return err
}

var _ repository.CartRepository = (*CartRepository)(nil)
