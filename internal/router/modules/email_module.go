package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kashvi-creations/storefront-api/internal/container"
	handlers "github.com/kashvi-creations/storefront-api/internal/interface/http"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

type EmailModule struct {
	Handler *handlers.EmailHandler
	JWT     *helpers.JWTManager
}

func NewEmailModule(h *handlers.EmailHandler, jwt *helpers.JWTManager) *EmailModule {
	return &EmailModule{Handler: h, JWT: jwt}
}

func (m *EmailModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/email/invoice", m.Handler.SendInvoice)
	}
}
