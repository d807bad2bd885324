package main

import (
	"context"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/delivery/http/controllers"
	"invrent-service/internal/app/delivery/http/middlewares"
	"invrent-service/internal/app/delivery/http/routers"
	"invrent-service/internal/app/drivers/database"
	"invrent-service/internal/app/drivers/logger"
	"invrent-service/internal/app/drivers/messaging"
	"invrent-service/internal/app/drivers/storage"
	"invrent-service/internal/app/services/core/admin"
	"invrent-service/internal/app/services/core/availability"
	"invrent-service/internal/app/services/core/catalog"
	"invrent-service/internal/app/services/core/items"
	"invrent-service/internal/app/services/core/loans"
	"invrent-service/internal/app/services/core/reservations"
	"invrent-service/internal/app/services/inventory"
	"invrent-service/internal/app/services/shared/events"
	"invrent-service/internal/app/services/shared/redis"
	sharedStorage "invrent-service/internal/app/services/shared/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig.Minio.BucketName),
		Logger:         zapLogger,
		AccessLogger:   logrusLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	catalogWorker, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	catalogWorker.Stop()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (*catalog.Worker, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventQueue, log)
	if err != nil {
		return nil, err
	}

	// Inventory backend
	inventoryClient := inventory.NewInventoryClient(internalConfig.Inventory, log)

	// Usecases
	auditRepository := admin.NewAuditRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DBName, log)
	adminUsecase := admin.NewAdminUsecase(inventoryClient, redisRepository, auditRepository, internalConfig, log)
	itemUsecase := items.NewItemUsecase(inventoryClient, eventPublisher, internalConfig, log)
	catalogUsecase := catalog.NewCatalogUsecase(inventoryClient, redisRepository, log)
	reservationUsecase := reservations.NewReservationUsecase(inventoryClient, eventPublisher, internalConfig, log)
	loanUsecase := loans.NewLoanUsecase(inventoryClient, eventPublisher, log)
	timelineUsecase, err := availability.NewTimelineUsecase(inventoryClient, objectStorage, eventPublisher, internalConfig, log)
	if err != nil {
		return nil, err
	}

	// Workers
	catalogWorker := catalog.NewWorker(log, catalogUsecase, internalConfig.Catalog.RefreshCronSpec)
	catalogWorker.Start(context.Background())

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, adminUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		log,
		bootstrap.AccessLogger,
		internalConfig,
		middlewares,
		controllers.NewHealthController(internalConfig),
		controllers.NewItemController(log, itemUsecase),
		controllers.NewCatalogController(log, catalogUsecase),
		controllers.NewReservationController(log, reservationUsecase),
		controllers.NewLoanController(log, loanUsecase),
		controllers.NewTimelineController(log, timelineUsecase),
		controllers.NewAdminController(log, adminUsecase),
	)
	return catalogWorker, nil
}
