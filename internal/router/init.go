package router

import (
	application "github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/internal/container"
	pginfra "github.com/kashvi-creations/storefront-api/internal/infrastructure/postgres"
	"github.com/kashvi-creations/storefront-api/internal/infrastructure/redisstore"
	handlers "github.com/kashvi-creations/storefront-api/internal/interface/http"
	"github.com/kashvi-creations/storefront-api/internal/router/modules"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Wishlist *handlers.WishlistHandler
	Email    *handlers.EmailHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	cartRepo := pginfra.NewCartRepository(pool)
	wishlistRepo := pginfra.NewWishlistRepository(pool)

	codeStore := redisstore.NewResetCodeStore(container.GetRedis())

	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger)
	resetSvc := application.NewResetService(userRepo, codeStore, container.GetSMS(), cfg.OTPTTL, logger)
	productSvc := application.NewProductService(productRepo, container.GetES(), cfg.ESProductsIndex, logger)
	cartSvc := application.NewCartService(cartRepo, productRepo, logger)
	wishlistSvc := application.NewWishlistService(wishlistRepo, productRepo, logger)

	return Deps{
		Auth:     handlers.NewAuthHandler(userSvc, resetSvc, userRepo, container.GetRedis(), container.GetMailgun(), container.GetRabbitPub(), cfg, logger),
		Products: handlers.NewProductHandler(productSvc, logger),
		Cart:     handlers.NewCartHandler(cartSvc, logger),
		Wishlist: handlers.NewWishlistHandler(wishlistSvc, logger),
		Email:    handlers.NewEmailHandler(container.GetMailgun(), logger, cfg),
	}
}

// InitModules wires repositories, services and handlers, then registers
// every feature module with the registry. Call once during startup.
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.Auth, jwt))
	r.Add(modules.NewShopModule(deps.Products, deps.Cart, deps.Wishlist, jwt))
	r.Add(modules.NewEmailModule(deps.Email, jwt))
	r.Add(modules.NewDebugModule())
}
