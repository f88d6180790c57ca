package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	repo "github.com/kashvi-creations/storefront-api/internal/domain/repository"
)

// WishlistService owns the per-user wishlist set. Add and Remove are
// both idempotent; moving an item to the cart is orchestrated by the
// client as two calls, not here.
type WishlistService struct {
	Wishlists repo.WishlistRepository
	Products  repo.ProductRepository
	Logger    *logrus.Logger
}

func NewWishlistService(wishlists repo.WishlistRepository, products repo.ProductRepository, logger *logrus.Logger) *WishlistService {
	return &WishlistService{Wishlists: wishlists, Products: products, Logger: logger}
}

func (s *WishlistService) wishlist(userID string, items []entity.WishlistEntry) *entity.Wishlist {
	return &entity.Wishlist{UserID: userID, Items: items}
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) (*entity.Wishlist, error) {
	ok, err := s.Products.Exists(productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProductNotFound
	}
	if err := s.Wishlists.Add(userID, productID); err != nil {
		return nil, err
	}
	items, err := s.Wishlists.List(userID)
	if err != nil {
		return nil, err
	}
	return s.wishlist(userID, items), nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) (*entity.Wishlist, error) {
	if err := s.Wishlists.Remove(userID, productID); err != nil {
		return nil, err
	}
	items, err := s.Wishlists.List(userID)
	if err != nil {
		return nil, err
	}
	return s.wishlist(userID, items), nil
}

func (s *WishlistService) List(ctx context.Context, userID string) (*entity.Wishlist, error) {
	items, err := s.Wishlists.List(userID)
	if err != nil {
		return nil, err
	}
	return s.wishlist(userID, items), nil
}
