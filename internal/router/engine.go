// Package router wires the HTTP surface: one cart per session key in
// the URL, JSON in and out, presentation-level money formatting.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopnest/internal/config"
	"github.com/nikolayk812/shopnest/internal/metrics"
	"github.com/nikolayk812/shopnest/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func New(cfg config.Config, svc *service.ShopService) *gin.Engine {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(metrics.Middleware())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &handler{svc: svc}

	api := engine.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/categories", h.listCategories)
		api.GET("/me", h.currentUser)

		carts := api.Group("/carts/:ownerID")
		{
			carts.GET("", h.getCart)
			carts.POST("/items", h.addItem)
			carts.POST("/items/:product/increment", h.incrementItem)
			carts.POST("/items/:product/decrement", h.decrementItem)
			carts.PUT("/items/:product", h.setItemQuantity)
			carts.DELETE("/items/:product", h.deleteItem)
			carts.POST("/checkout", h.checkout)
			carts.GET("/orders", h.listOrders)
		}
	}

	return engine
}
