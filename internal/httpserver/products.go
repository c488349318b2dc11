package httpserver

import (
	"errors"
	"net/http"

	"emrys-pos/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *handlers) listProducts(c *gin.Context) {
	opts := product.ListOptions{
		Search:   c.Query("search"),
		Category: product.Category(c.Query("category")),
	}
	if opts.Category != "" && !opts.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	items := h.deps.Products.List(c.Request.Context(), opts)

	out := make([]productDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toProductDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

type createProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category" binding:"required"`
	Image    string          `json:"image"`
}

func (h *handlers) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.deps.Products.Create(c.Request.Context(), product.NewProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: product.Category(req.Category),
		ImageURL: req.Image,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toProductDTO(p))
}

type updatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

func (h *handlers) updatePrice(c *gin.Context) {
	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.deps.Products.UpdatePrice(c.Request.Context(), c.Param("id"), req.Price)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toProductDTO(p))
}
