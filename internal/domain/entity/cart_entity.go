package entity

// CartItem is one (product, quantity) pair in a user's cart.
// Quantity is always > 0; a zero quantity means the row is removed.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartEntry is a cart item enriched with catalog data for API reads.
type CartEntry struct {
	ProductID    string   `json:"product_id"`
	Title        string   `json:"title"`
	DesignNumber string   `json:"design_number,omitempty"`
	Media        []string `json:"media,omitempty"`
	TotalStock   int      `json:"total_stock"`
	Quantity     int      `json:"quantity"`
}

// Cart is the per-user aggregate; Items keeps insertion order.
type Cart struct {
	UserID string      `json:"user_id"`
	Items  []CartEntry `json:"items"`
}

// WishlistEntry is one wishlist row enriched with catalog data.
type WishlistEntry struct {
	ProductID    string   `json:"product_id"`
	Title        string   `json:"title"`
	DesignNumber string   `json:"design_number,omitempty"`
	Media        []string `json:"media,omitempty"`
	TotalStock   int      `json:"total_stock"`
}

// Wishlist is the per-user set of product references.
type Wishlist struct {
	UserID string          `json:"user_id"`
	Items  []WishlistEntry `json:"items"`
}
