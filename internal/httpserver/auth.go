package httpserver

import (
	"net/http"

	"emrys-pos/internal/auth"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// login exchanges the terminal manager PIN for a bearer token.
func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pin is required"})
		return
	}

	if h.deps.AdminPinHash == "" || !auth.CheckPIN(req.PIN, h.deps.AdminPinHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid PIN"})
		return
	}

	token, err := auth.GenerateToken(h.deps.JWTSecret, auth.RoleManager)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
