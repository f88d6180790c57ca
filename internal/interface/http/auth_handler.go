package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/config"
	userapp "github.com/kashvi-creations/storefront-api/internal/application"
	repo "github.com/kashvi-creations/storefront-api/internal/domain/repository"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
	"github.com/kashvi-creations/storefront-api/pkg/mailer"
	tpl "github.com/kashvi-creations/storefront-api/pkg/mailer/templates"
	"github.com/kashvi-creations/storefront-api/pkg/response"
	"github.com/kashvi-creations/storefront-api/pkg/validation"
)

// AuthHandler covers registration, the session issuer, and both
// password-reset flows (email link and phone OTP).
type AuthHandler struct {
	Users   *userapp.UserService
	Reset   *userapp.ResetService
	Repo    repo.UserRepository
	RDB     *redis.Client
	Mail    *mailer.Mailgun
	Pub     *helpers.RabbitPublisher
	Cfg     *config.Config
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(users *userapp.UserService, reset *userapp.ResetService, repo repo.UserRepository, rdb *redis.Client, mail *mailer.Mailgun, pub *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		Users:   users,
		Reset:   reset,
		Repo:    repo,
		RDB:     rdb,
		Mail:    mail,
		Pub:     pub,
		Cfg:     cfg,
		Logger:  logger,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
	}
}

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func ttlText(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	m := int(d / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

// relayFailureMessage maps mail relay failures onto the messages the
// storefront client surfaces as toasts.
func relayFailureMessage(err error) string {
	switch {
	case errors.Is(err, mailer.ErrRelayAuth):
		return "Email authentication failed. Please contact support."
	case errors.Is(err, mailer.ErrRelayNetwork):
		return "Network error. Please check your connection."
	default:
		return "Failed to send email. Please try again."
	}
}

type registerRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,e164"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	_, err := h.Users.Register(c.Request.Context(), userapp.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	switch {
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "User already exists", nil)
	case errors.Is(err, userapp.ErrWeakPassword):
		response.Error[any](c, http.StatusBadRequest, "Password is too weak! Use a stronger password.", nil)
	case err != nil:
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
	default:
		response.Success[any](c, http.StatusOK, nil, "User registered successfully", nil)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
// Sets the session cookie and returns the token and user in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.Set(c, token, exp)

	// Best-effort login notification, delivered by the email worker.
	if h.Pub != nil && h.Cfg.MailSendEnabled {
		data := tpl.EmailData{
			Name:           u.UserName,
			RecipientEmail: u.Email,
			StoreName:      h.Cfg.StoreName,
			Time:           time.Now().UTC().Format("02 January 2006, 15:04 MST"),
			IP:             clientIP(c),
			UserAgent:      c.GetHeader("User-Agent"),
		}
		job := mailer.EmailJob{To: u.Email, Template: tpl.LoginNotification, Data: tpl.ToMap(data)}
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("failed to enqueue login notification")
		}
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": u.Public()}, "login successful", map[string]any{"expires_at": exp})
}

// Logout POST /api/auth/logout
// Clears the cookie unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "Logged out successfully", nil)
}

// CheckAuth GET /api/auth/check-auth (auth required)
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Users.GetUser(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "User not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u.Public()}, "authenticated", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword POST /api/auth/forgot-password
// Emails a reset link. The send is synchronous; a relay failure is the
// caller's failure.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Repo.GetByEmail(req.Email)
	if err != nil || u == nil {
		response.Error[any](c, http.StatusNotFound, "User not found", nil)
		return
	}
	tok, err := genToken(32)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	if err := h.RDB.Set(c.Request.Context(), helpers.KeyResetToken(tok), u.ID, h.Cfg.ResetTokenTTL).Err(); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
		return
	}
	link := h.Cfg.ResetPasswordURL + "/" + tok

	html, err := tpl.RenderHTML(tpl.ResetPassword, tpl.EmailData{
		Name:          u.UserName,
		StoreName:     h.Cfg.StoreName,
		ResetURL:      link,
		ExpiresInText: ttlText(h.Cfg.ResetTokenTTL),
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "template render failed", nil)
		return
	}
	if h.Cfg.MailSendEnabled {
		if err := h.Mail.Send(c.Request.Context(), u.Email, tpl.SubjectFor(tpl.ResetPassword, h.Cfg.StoreName), "", html); err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("email", u.Email).Error("reset email send failed")
			}
			response.Error[any](c, http.StatusInternalServerError, relayFailureMessage(err), nil)
			return
		}
	}
	response.Success[any](c, http.StatusOK, nil, "Reset link sent to your email.", nil)
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword POST /api/auth/reset-password
// Email-link flow.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !helpers.PasswordStrongEnough(req.NewPassword) {
		response.Error[any](c, http.StatusBadRequest, "Password is too weak! Use a stronger password.", nil)
		return
	}
	uid, err := h.RDB.Get(c.Request.Context(), helpers.KeyResetToken(req.Token)).Result()
	if err != nil || uid == "" {
		response.Error[any](c, http.StatusBadRequest, "Invalid or expired reset link.", nil)
		return
	}
	hash, err := helpers.HashPassword(req.NewPassword)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "hash fail", nil)
		return
	}
	if err := h.Repo.UpdatePassword(uid, hash); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "update fail", nil)
		return
	}
	h.RDB.Del(c.Request.Context(), helpers.KeyResetToken(req.Token))
	response.Success[any](c, http.StatusOK, nil, "Password has been reset successfully.", nil)
}

type sendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// SendResetOTP POST /api/auth/send-reset-otp
func (h *AuthHandler) SendResetOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Reset.RequestCode(c.Request.Context(), req.Phone); err != nil {
		if errors.Is(err, userapp.ErrSMSDelivery) {
			// The code stays stored; only delivery failed.
			response.Error[any](c, http.StatusInternalServerError, "Error sending OTP", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "could not issue OTP", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP sent!", nil)
}

type verifyOTPRequest struct {
	Phone      string `json:"phone" binding:"required"`
	EnteredOTP string `json:"entered_otp" binding:"required"`
}

// VerifyResetOTP POST /api/auth/verify-reset-otp
func (h *AuthHandler) VerifyResetOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Reset.VerifyCode(c.Request.Context(), req.Phone, req.EnteredOTP)
	switch {
	case errors.Is(err, userapp.ErrCodeMismatch):
		response.Error[any](c, http.StatusBadRequest, "Invalid OTP", nil)
	case errors.Is(err, userapp.ErrCodeExpired):
		response.Error[any](c, http.StatusBadRequest, "OTP expired", nil)
	case err != nil:
		response.Error[any](c, http.StatusInternalServerError, "verification unavailable", nil)
	default:
		response.Success[any](c, http.StatusOK, nil, "OTP verified!", nil)
	}
}

type resetPasswordOTPRequest struct {
	Phone       string `json:"phone" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPasswordOTP POST /api/auth/reset-password-otp
// Requires a previously verified code; the code is consumed on success.
func (h *AuthHandler) ResetPasswordOTP(c *gin.Context) {
	var req resetPasswordOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Reset.ResetPassword(c.Request.Context(), req.Phone, req.NewPassword)
	switch {
	case errors.Is(err, userapp.ErrCodeNotVerified):
		response.Error[any](c, http.StatusBadRequest, "OTP not verified", nil)
	case errors.Is(err, userapp.ErrCodeExpired):
		response.Error[any](c, http.StatusBadRequest, "OTP expired", nil)
	case errors.Is(err, userapp.ErrWeakPassword):
		response.Error[any](c, http.StatusBadRequest, "Password is too weak! Use a stronger password.", nil)
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "User not found", nil)
	case err != nil:
		response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
	default:
		response.Success[any](c, http.StatusOK, nil, "Password has been reset successfully.", nil)
	}
}
