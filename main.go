package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-service/controllers"
	"marketplace-service/database"
	"marketplace-service/logger"
	"marketplace-service/models"
	"marketplace-service/repository"
	"marketplace-service/routes"
	"marketplace-service/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		logger.Log.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	log := logger.Log
	log.Info("Starting marketplace service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	db, err := database.ConnectPostgres(cfg.DB, log,
		&models.Product{},
		&models.Service{},
		&models.Order{},
		&models.OrderItem{},
		&models.Appointment{},
		&models.Availability{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	productRepo := repository.NewGormProductRepository(db)
	serviceRepo := repository.NewGormServiceRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	appointmentRepo := repository.NewGormAppointmentRepository(db)
	availabilityRepo := repository.NewGormAvailabilityRepository(db)
	notificationRepo := repository.NewGormNotificationRepository(db)

	notificationService := services.NewNotificationService(notificationRepo, log)
	orderService := services.NewOrderService(orderRepo, productRepo, notificationService, cfg.PriceSource, log)
	appointmentService := services.NewAppointmentService(appointmentRepo, availabilityRepo, serviceRepo, notificationService, log)
	reportService := services.NewReportService(orderRepo, log)
	catalogService := services.NewCatalogService(productRepo, serviceRepo, log)

	orderController := controllers.NewOrderController(orderService)
	appointmentController := controllers.NewAppointmentController(appointmentService)
	notificationController := controllers.NewNotificationController(notificationService)
	reportController := controllers.NewReportController(reportService)
	catalogController := controllers.NewCatalogController(catalogService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r,
		orderController,
		appointmentController,
		notificationController,
		reportController,
		catalogController,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
