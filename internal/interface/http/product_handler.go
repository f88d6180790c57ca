package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/kashvi-creations/storefront-api/internal/application"
	"github.com/kashvi-creations/storefront-api/pkg/response"
)

// ProductHandler serves public catalog reads.
type ProductHandler struct {
	Svc    *userapp.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *userapp.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// List GET /api/shop/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "catalog unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, products, "products", nil)
}

// Get GET /api/shop/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		response.Error[any](c, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userapp.ErrProductNotFound) {
			response.Error[any](c, http.StatusNotFound, "Product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "catalog unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

// Search GET /api/shop/products/search?q=&size=
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
