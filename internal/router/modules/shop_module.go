package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kashvi-creations/storefront-api/internal/container"
	handlers "github.com/kashvi-creations/storefront-api/internal/interface/http"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

// ShopModule groups the storefront routes: public catalog browsing plus
// the per-user cart and wishlist aggregates behind the session cookie.
type ShopModule struct {
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Wishlist *handlers.WishlistHandler
	JWT      *helpers.JWTManager
}

func NewShopModule(p *handlers.ProductHandler, cart *handlers.CartHandler, wl *handlers.WishlistHandler, jwt *helpers.JWTManager) *ShopModule {
	return &ShopModule{Products: p, Cart: cart, Wishlist: wl, JWT: jwt}
}

func (m *ShopModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/shop/products", m.Products.List)
	rg.GET("/shop/products/search", searchLimiter, m.Products.Search)
	rg.GET("/shop/products/:id", m.Products.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/shop/cart", m.Cart.Add)
		auth.PUT("/shop/cart", m.Cart.Update)
		auth.GET("/shop/cart/:userId", m.Cart.Get)
		auth.DELETE("/shop/cart/:userId", m.Cart.Clear)
		auth.DELETE("/shop/cart/:userId/:productId", m.Cart.Remove)

		auth.POST("/shop/wishlist", m.Wishlist.Add)
		auth.GET("/shop/wishlist/:userId", m.Wishlist.Get)
		auth.DELETE("/shop/wishlist/:userId/:productId", m.Wishlist.Remove)
	}
}
