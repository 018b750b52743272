package main

import (
	"github.com/nikolayk812/shopnest/internal/catalog"
	"github.com/nikolayk812/shopnest/internal/config"
	"github.com/nikolayk812/shopnest/internal/identity"
	"github.com/nikolayk812/shopnest/internal/order"
	"github.com/nikolayk812/shopnest/internal/repository"
	"github.com/nikolayk812/shopnest/internal/router"
	"github.com/nikolayk812/shopnest/internal/service"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	cfg := config.Load()

	svc := service.New(
		catalog.Default(),
		repository.NewCart(),
		repository.NewOrder(),
		order.NewBuilder(order.SystemClock{}, order.UUIDSource{}),
		identity.StaticProvider{Email: cfg.UserEmail},
	)

	engine := router.New(cfg, svc)

	log.WithField("port", cfg.Port).Info("ShopNest service starting")

	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
