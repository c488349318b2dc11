package httpserver

import (
	"errors"
	"net/http"

	"emrys-pos/internal/product"

	"github.com/gin-gonic/gin"
)

func (h *handlers) getCart(c *gin.Context) {
	h.respondCart(c)
}

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	if err := h.deps.Orders.AddItem(c.Request.Context(), req.ProductID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondCart(c)
}

type adjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *handlers) adjustCartItem(c *gin.Context) {
	var req adjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required and must be non-zero"})
		return
	}

	if err := h.deps.Orders.AdjustQuantity(c.Request.Context(), c.Param("id"), req.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondCart(c)
}

func (h *handlers) clearCart(c *gin.Context) {
	h.deps.Orders.Clear(c.Request.Context())
	h.respondCart(c)
}

func (h *handlers) respondCart(c *gin.Context) {
	st := h.deps.Settings.Get()
	c.JSON(http.StatusOK, toCartDTO(
		h.deps.Orders.Lines(),
		h.deps.Orders.ItemCount(),
		h.deps.Orders.Totals(),
		st,
	))
}
