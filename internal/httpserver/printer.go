package httpserver

import (
	"errors"
	"net/http"

	"emrys-pos/internal/printer"
	"emrys-pos/internal/receipt"

	"github.com/gin-gonic/gin"
)

func (h *handlers) printerConnect(c *gin.Context) {
	if err := h.deps.Printer.Connect(c.Request.Context()); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, printer.ErrDeviceNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":  string(h.deps.Printer.State()),
		"device": h.deps.Printer.DeviceName(),
	})
}

func (h *handlers) printerDisconnect(c *gin.Context) {
	h.deps.Printer.Disconnect()
	c.JSON(http.StatusOK, gin.H{"state": string(printer.StateDisconnected)})
}

// printerStatus is polled by the UI; it asks the transport, so a
// dropped link shows up here without any disconnect event.
func (h *handlers) printerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":  string(h.deps.Printer.State()),
		"ready":  h.deps.Printer.IsReady(),
		"device": h.deps.Printer.DeviceName(),
	})
}

// printInvoice renders the pending invoice and streams it to the
// printer. Failures leave the cart and the invoice untouched; the
// whole payload can simply be sent again.
func (h *handlers) printInvoice(c *gin.Context) {
	inv, err := h.deps.Orders.PendingInvoice()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	text := receipt.Render(inv, h.deps.Settings.Get())

	h.deps.Stats.PrintAttempts.Inc()
	if err := h.deps.Printer.SendReceipt(c.Request.Context(), text); err != nil {
		h.deps.Stats.PrintFailures.Inc()

		switch {
		case errors.Is(err, printer.ErrNotConnected):
			c.JSON(http.StatusConflict, gin.H{
				"error": "printer not connected; connect a printer first",
			})
		default:
			var writeErr *printer.WriteError
			if errors.As(err, &writeErr) {
				c.JSON(http.StatusBadGateway, gin.H{
					"error": "receipt was not fully sent; retry the print",
					"chunk": writeErr.Chunk,
				})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent", "invoice": inv.ID})
}
