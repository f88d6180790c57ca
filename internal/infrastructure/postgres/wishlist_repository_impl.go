package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/internal/domain/repository"
)

// WishlistRepository stores the wishlist as a set keyed on
// (user, product), with the same weak product reference as the cart.
type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func (r *WishlistRepository) Add(userID, productID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`, userID, productID)
	return err
}

func (r *WishlistRepository) Remove(userID, productID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

func (r *WishlistRepository) List(userID string) ([]entity.WishlistEntry, error) {
	ctx := context.Background()

	if _, err := r.pool.Exec(ctx, `
		DELETE FROM wishlist_items wi
		WHERE wi.user_id = $1
		  AND NOT EXISTS (SELECT 1 FROM products p WHERE p.id = wi.product_id)
	`, userID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT wi.product_id, p.title, p.design_number, p.media, p.total_stock
		FROM wishlist_items wi
		JOIN products p ON p.id = wi.product_id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.WishlistEntry, 0)
	for rows.Next() {
		var e entity.WishlistEntry
		if err := rows.Scan(&e.ProductID, &e.Title, &e.DesignNumber, &e.Media, &e.TotalStock); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

var _ repository.WishlistRepository = (*WishlistRepository)(nil)
