package httpserver

import (
	"errors"
	"net/http"

	"emrys-pos/internal/settings"

	"github.com/gin-gonic/gin"
)

func (h *handlers) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Settings.Get())
}

func (h *handlers) updateSettings(c *gin.Context) {
	var input settings.StoreSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.deps.Settings.Update(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, settings.ErrNegativeTaxRate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *handlers) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Stats.Snapshot())
}
