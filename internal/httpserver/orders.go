package httpserver

import (
	"errors"
	"net/http"

	"emrys-pos/internal/order"

	"github.com/gin-gonic/gin"
)

// checkout freezes the cart into an invoice. The cart stays intact
// until the confirmation is dismissed via completeInvoice, so a
// failed print can be retried against the same state.
func (h *handlers) checkout(c *gin.Context) {
	inv, err := h.deps.Orders.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, order.ErrEmptyOrder) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toInvoiceDTO(inv, h.deps.Settings.Get()))
}

func (h *handlers) pendingInvoice(c *gin.Context) {
	inv, err := h.deps.Orders.PendingInvoice()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toInvoiceDTO(inv, h.deps.Settings.Get()))
}

func (h *handlers) completeInvoice(c *gin.Context) {
	if err := h.deps.Orders.CompleteInvoice(c.Request.Context()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
