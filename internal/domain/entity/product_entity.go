package entity

import "time"

// Product belongs to catalog management; cart and wishlist hold weak
// references to it by id and prune entries whose product disappeared.
type Product struct {
	ID           string
	Title        string
	Description  string
	DesignNumber string
	Media        []string
	Price        float64
	SalePrice    float64
	TotalStock   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
