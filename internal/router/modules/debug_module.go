package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kashvi-creations/storefront-api/internal/container"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP.
	// Private/loopback clients bypass the limit so in-cluster
	// scrapers can poll freely.
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
