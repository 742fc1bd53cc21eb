package main

import (
	"context"
	"fmt"
	"time"

	"go-gin-travel-agency/config"
	"go-gin-travel-agency/internal/cache"
	"go-gin-travel-agency/internal/catalog"
	"go-gin-travel-agency/internal/database"
	"go-gin-travel-agency/internal/factory"
	"go-gin-travel-agency/internal/handler"
	"go-gin-travel-agency/internal/repository"
	"go-gin-travel-agency/internal/service"
	"go-gin-travel-agency/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.WithComponent("server")
	defer logger.L.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	travelCatalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	resolver := catalog.NewResolver(travelCatalog, factory.GlobalRand())
	offerStore := cache.NewRedisOfferStore(rdb, cfg.Catalog.OfferTTL)
	travelService := service.NewTravelService(resolver, offerStore)
	travelHandler := handler.NewTravelHandler(travelService)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	travelHandler.RegisterRoutes(router)

	log.Info("Server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_source", string(cfg.Catalog.Source)),
		zap.Int("cities", len(travelCatalog.Cities)),
	)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return catalog.Default(), nil
	case config.CatalogSourceFile:
		return catalog.LoadFile(cfg.Catalog.Path)
	case config.CatalogSourcePostgres:
		pool, err := database.InitDatabase(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		// 目錄讀完即為唯讀，不需要保留連線
		defer pool.Close()
		return repository.NewCatalogRepository(pool).Load(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
