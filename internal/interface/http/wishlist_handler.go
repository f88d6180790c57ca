package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/pkg/response"
	"github.com/kashvi-creations/storefront-api/pkg/validation"
)

type WishlistHandler struct {
	Svc    *userapp.WishlistService
	Logger *logrus.Logger
}

func NewWishlistHandler(svc *userapp.WishlistService, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{Svc: svc, Logger: logger}
}

type wishlistItemRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

func (h *WishlistHandler) respond(c *gin.Context, wl *entity.Wishlist, err error, okMessage string) {
	switch {
	case errors.Is(err, userapp.ErrProductNotFound):
		response.Error[any](c, http.StatusNotFound, "Product not found", nil)
	case err != nil:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("wishlist operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "wishlist unavailable", nil)
	default:
		response.Success(c, http.StatusOK, wl, okMessage, nil)
	}
}

// Add POST /api/shop/wishlist
// Idempotent set insert.
func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid data provided!", validation.ToDetails(err))
		return
	}
	if !validID(req.UserID) || !validID(req.ProductID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid user or product ID", nil)
		return
	}
	if !ownsAggregate(c, req.UserID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	wl, err := h.Svc.Add(c.Request.Context(), req.UserID, req.ProductID)
	h.respond(c, wl, err, "Item added to wishlist")
}

// Get GET /api/shop/wishlist/:userId
func (h *WishlistHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid or missing User ID", nil)
		return
	}
	if !ownsAggregate(c, userID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	wl, err := h.Svc.List(c.Request.Context(), userID)
	h.respond(c, wl, err, "wishlist")
}

// Remove DELETE /api/shop/wishlist/:userId/:productId
// Idempotent.
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, productID := c.Param("userId"), c.Param("productId")
	if !validID(userID) || !validID(productID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid data provided!", nil)
		return
	}
	if !ownsAggregate(c, userID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	wl, err := h.Svc.Remove(c.Request.Context(), userID, productID)
	h.respond(c, wl, err, "Item removed from wishlist")
}
