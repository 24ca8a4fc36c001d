package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	drivermailer "medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/mailer"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/redis"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	utils.SetEnvironment(internalConfig.App.Env)
	logger.InitLogrus(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := drivermailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, smtpClient, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, smtpClient *drivermailer.SMTPClient, minioClient *minio.Client) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	storageService := sharedstorage.NewMinioStorageService(minioClient, bootstrap.DriverConfig)
	paymentGatewayService := payment_gateway.NewStripeService(bootstrap.InternalConfig)

	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		logrus.Fatalf("Error initializing mailer service: %v", err)
	}

	mailerWorker, err := mailer.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error initializing mailer worker: %v", err)
	}
	if err := mailerWorker.Start(); err != nil {
		logrus.Fatalf("Error starting mailer worker: %v", err)
	}
	bootstrap.WorkerStop = mailerWorker.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, storageService)
	userController := users.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, storageService)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Review
	reviewMongoRepository := reviews.NewReviewMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	reviewUsecase := reviews.NewReviewUsecase(reviewMongoRepository, doctorMongoRepository)
	reviewController := reviews.NewReviewController(bootstrap.Logger, reviewUsecase)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(
		bootstrap.Logger,
		bookingMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		paymentGatewayService,
		mailerService,
		bootstrap.InternalConfig,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, doctorMongoRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig.JWT.Secret)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		doctorController,
		reviewController,
		bookingController,
	)
}
