package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	repo "github.com/kashvi-creations/storefront-api/internal/domain/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartService owns the per-user cart aggregate. Every mutation returns
// the refreshed cart, matching what the storefront client renders.
type CartService struct {
	Carts    repo.CartRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewCartService(carts repo.CartRepository, products repo.ProductRepository, logger *logrus.Logger) *CartService {
	return &CartService{Carts: carts, Products: products, Logger: logger}
}

func (s *CartService) cart(userID string, items []entity.CartEntry) *entity.Cart {
	return &entity.Cart{UserID: userID, Items: items}
}

// AddItem appends the product or increments its quantity when already
// present (accumulating, not replacing).
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	ok, err := s.Products.Exists(productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProductNotFound
	}
	if err := s.Carts.AddItem(userID, productID, quantity); err != nil {
		return nil, err
	}
	items, err := s.Carts.List(userID)
	if err != nil {
		return nil, err
	}
	return s.cart(userID, items), nil
}

// SetQuantity overwrites the quantity of an existing cart item.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	ok, err := s.Carts.SetQuantity(userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrItemNotFound
	}
	items, err := s.Carts.List(userID)
	if err != nil {
		return nil, err
	}
	return s.cart(userID, items), nil
}

// RemoveItem deletes the product from the cart; absent items are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	if err := s.Carts.RemoveItem(userID, productID); err != nil {
		return nil, err
	}
	items, err := s.Carts.List(userID)
	if err != nil {
		return nil, err
	}
	return s.cart(userID, items), nil
}

// List returns the cart enriched with catalog data; entries whose
// product disappeared are pruned as a side effect of the read.
func (s *CartService) List(ctx context.Context, userID string) (*entity.Cart, error) {
	items, err := s.Carts.List(userID)
	if err != nil {
		return nil, err
	}
	return s.cart(userID, items), nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) (*entity.Cart, error) {
	if err := s.Carts.Clear(userID); err != nil {
		return nil, err
	}
	return s.cart(userID, []entity.CartEntry{}), nil
}
