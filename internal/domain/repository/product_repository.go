package repository

import "github.com/kashvi-creations/storefront-api/internal/domain/entity"

// ProductRepository exposes catalog reads; catalog writes belong to the
// (out of scope) catalog management service, except for seeding.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Exists(id string) (bool, error)
}
