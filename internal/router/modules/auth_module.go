package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kashvi-creations/storefront-api/internal/container"
	handlers "github.com/kashvi-creations/storefront-api/internal/interface/http"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	// Public endpoints with IP-based rate limits
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetInitLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetConfirmLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)

	// Password reset over email link
	rg.POST("/auth/forgot-password", resetInitLimiter, m.Handler.ForgotPassword)
	rg.POST("/auth/reset-password", resetConfirmLimiter, m.Handler.ResetPassword)

	// Password reset over phone OTP
	rg.POST("/auth/send-reset-otp", resetInitLimiter, m.Handler.SendResetOTP)
	rg.POST("/auth/verify-reset-otp", resetConfirmLimiter, m.Handler.VerifyResetOTP)
	rg.POST("/auth/reset-password-otp", resetConfirmLimiter, m.Handler.ResetPasswordOTP)

	// Session introspection requires a valid cookie
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/check-auth", m.Handler.CheckAuth)
	}
}
