package httpserver

import (
	"net/http"

	"emrys-pos/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the terminal API.
func buildRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		cors.Default(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RateLimit(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handlers{deps: deps}
	api := router.Group("/api")
	{
		api.POST("/auth/login", h.login)

		api.GET("/products", h.listProducts)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.adjustCartItem)
		api.DELETE("/cart", h.clearCart)

		api.POST("/orders/checkout", h.checkout)
		api.POST("/orders/complete", h.completeInvoice)
		api.GET("/orders/pending", h.pendingInvoice)

		api.GET("/settings", h.getSettings)

		api.POST("/printer/connect", h.printerConnect)
		api.POST("/printer/disconnect", h.printerDisconnect)
		api.GET("/printer/status", h.printerStatus)
		api.POST("/printer/print", h.printInvoice)

		api.GET("/stats", h.stats)

		manager := api.Group("", middleware.RequireManager(deps.JWTSecret))
		{
			manager.POST("/products", h.createProduct)
			manager.PATCH("/products/:id/price", h.updatePrice)
			manager.PUT("/settings", h.updateSettings)
		}
	}

	return router
}

type handlers struct {
	deps Deps
}
