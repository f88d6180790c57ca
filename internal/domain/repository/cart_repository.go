package repository

import "github.com/kashvi-creations/storefront-api/internal/domain/entity"

// CartRepository persists the per-user cart aggregate. Mutations are
// single-statement read-modify-writes; concurrent updates to the same
// user's cart are last-write-wins.
type CartRepository interface {
	// AddItem appends a new row or increments the quantity of an
	// existing one (accumulating semantics).
	AddItem(userID, productID string, quantity int) error
	// SetQuantity overwrites the quantity of an existing row and
	// reports whether such a row existed.
	SetQuantity(userID, productID string, quantity int) (bool, error)
	// RemoveItem deletes a row; removing an absent row is a no-op.
	RemoveItem(userID, productID string) error
	// List returns items in insertion order, enriched with catalog
	// data. Rows whose product no longer exists are deleted first.
	List(userID string) ([]entity.CartEntry, error)
	// Clear empties the cart.
	Clear(userID string) error
}

// WishlistRepository persists the per-user wishlist set.
type WishlistRepository interface {
	Add(userID, productID string) error
	Remove(userID, productID string) error
	List(userID string) ([]entity.WishlistEntry, error)
}
