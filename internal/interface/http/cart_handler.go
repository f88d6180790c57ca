package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	"github.com/kashvi-creations/storefront-api/internal/interface/middleware"
	"github.com/kashvi-creations/storefront-api/pkg/response"
	"github.com/kashvi-creations/storefront-api/pkg/validation"
)

type CartHandler struct {
	Svc    *userapp.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *userapp.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

// ownsAggregate guards aggregate routes: the authenticated identity
// must be the aggregate owner, or an admin.
func ownsAggregate(c *gin.Context, userID string) bool {
	uid := c.GetString(middleware.CtxUserIDKey)
	role := c.GetString(middleware.CtxUserRoleKey)
	return uid == userID || role == entity.RoleAdmin
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type cartItemRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *CartHandler) respond(c *gin.Context, cart *entity.Cart, err error, okMessage string) {
	switch {
	case errors.Is(err, userapp.ErrInvalidQuantity):
		response.Error[any](c, http.StatusBadRequest, "Invalid data provided!", nil)
	case errors.Is(err, userapp.ErrProductNotFound):
		response.Error[any](c, http.StatusNotFound, "Product not found", nil)
	case errors.Is(err, userapp.ErrItemNotFound):
		response.Error[any](c, http.StatusNotFound, "Cart item not found!", nil)
	case err != nil:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("cart operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "cart unavailable", nil)
	default:
		response.Success(c, http.StatusOK, cart, okMessage, nil)
	}
}

// Add POST /api/shop/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req cartItemRequest
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
	cart, err := h.Svc.AddItem(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	h.respond(c, cart, err, "Item added to cart successfully")
}

// Update PUT /api/shop/cart
func (h *CartHandler) Update(c *gin.Context) {
	var req cartItemRequest
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
	cart, err := h.Svc.SetQuantity(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	h.respond(c, cart, err, "Cart item updated successfully")
}

// Get GET /api/shop/cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid or missing User ID", nil)
		return
	}
	if !ownsAggregate(c, userID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	cart, err := h.Svc.List(c.Request.Context(), userID)
	h.respond(c, cart, err, "cart")
}

// Remove DELETE /api/shop/cart/:userId/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	userID, productID := c.Param("userId"), c.Param("productId")
	if !validID(userID) || !validID(productID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid data provided!", nil)
		return
	}
	if !ownsAggregate(c, userID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	cart, err := h.Svc.RemoveItem(c.Request.Context(), userID, productID)
	h.respond(c, cart, err, "Cart item deleted successfully")
}

// Clear DELETE /api/shop/cart/:userId
func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.Param("userId")
	if !validID(userID) {
		response.Error[any](c, http.StatusBadRequest, "Invalid or missing User ID", nil)
		return
	}
	if !ownsAggregate(c, userID) {
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	}
	cart, err := h.Svc.Clear(c.Request.Context(), userID)
	h.respond(c, cart, err, "Cart emptied successfully")
}
