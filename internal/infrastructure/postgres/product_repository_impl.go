package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (title, description, design_number, media, price, sale_price, total_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Description, p.DesignNumber, p.Media, p.Price, p.SalePrice, p.TotalStock)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

const productColumns = `id, title, description, design_number, media, price, sale_price, total_stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.DesignNumber, &p.Media,
		&p.Price, &p.SalePrice, &p.TotalStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()
	return scanProduct(r.pool.QueryRow(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1
	`, id))
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Exists(id string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
