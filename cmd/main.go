package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/cache"
	"github.com/fortix/inventory-service/internal/events"
	"github.com/fortix/inventory-service/internal/handler"
	"github.com/fortix/inventory-service/internal/repository"
	"github.com/fortix/inventory-service/internal/service"
	"github.com/fortix/inventory-service/pkg/config"
	"github.com/fortix/inventory-service/pkg/middleware"
	pkgtls "github.com/fortix/inventory-service/pkg/tls"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Missing .env is fine; config falls back to the process environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	claims := cache.NewIdempotencyStore(redisClient, cfg.IdempotencyTTL)

	var publisher service.EventPublisher
	if !cfg.KafkaDisabled {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer producer.Close()
		publisher = producer
	}

	itemRepo := repository.NewItemRepository(dynamoClient, cfg.ItemTableName)
	saleRepo := repository.NewSaleRepository(dynamoClient, cfg.SaleTableName, cfg.ItemTableName)
	vendorRepo := repository.NewVendorRepository(dynamoClient, cfg.VendorTableName)

	inventoryService := service.NewInventoryService(itemRepo, logger)
	saleService := service.NewSaleService(saleRepo, itemRepo, claims, publisher, logger)
	reportService := service.NewReportService(itemRepo, saleRepo, logger)
	vendorService := service.NewVendorService(vendorRepo, logger)

	if cfg.KafkaConsumerEnabled {
		consumer := events.NewKafkaConsumer(cfg.KafkaBrokers, cfg.KafkaSaleTopic, cfg.KafkaGroupID, saleService, logger)
		consumer.Start()
		defer consumer.Stop()
	}

	inventoryHandler := handler.NewInventoryHandler(inventoryService, logger)
	saleHandler := handler.NewSaleHandler(saleService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	vendorHandler := handler.NewVendorHandler(vendorService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/inventory", inventoryHandler.CreateItem)
		v1.GET("/inventory", inventoryHandler.ListItems)
		v1.GET("/inventory/:id", inventoryHandler.GetItem)
		v1.PUT("/inventory/:id", inventoryHandler.UpdateItem)
		v1.DELETE("/inventory/:id", inventoryHandler.DeleteItem)
		v1.POST("/inventory/:id/adjust", inventoryHandler.AdjustQuantity)

		v1.POST("/sales", saleHandler.RecordSale)
		v1.GET("/sales", saleHandler.ListSales)

		v1.GET("/reports/dashboard", reportHandler.Dashboard)

		v1.POST("/vendors", vendorHandler.CreateVendor)
		v1.GET("/vendors", vendorHandler.ListVendors)
		v1.GET("/vendors/:id", vendorHandler.GetVendor)
		v1.PUT("/vendors/:id", vendorHandler.UpdateVendor)
		v1.DELETE("/vendors/:id", vendorHandler.DeleteVendor)

		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}
	defer pkgtls.Cleanup()

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))
		var err error
		if tlsConfig != nil {
			srv.TLSConfig = tlsConfig
			go pkgtls.WatchCertificates(logger)
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
