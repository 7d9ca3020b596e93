package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly-service/internal/app/config"
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"
	"agendly-service/internal/app/delivery/http/routers"
	"agendly-service/internal/app/drivers/database"
	"agendly-service/internal/app/drivers/logger"
	"agendly-service/internal/app/drivers/messaging"
	"agendly-service/internal/app/services/core/appointments"
	"agendly-service/internal/app/services/core/auth"
	"agendly-service/internal/app/services/core/availability"
	"agendly-service/internal/app/services/core/calendar"
	"agendly-service/internal/app/services/core/reminders"
	"agendly-service/internal/app/services/core/users"
	"agendly-service/internal/app/services/shared/locker"
	"agendly-service/internal/app/services/shared/notificationqueue"
	"agendly-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	bootstrapingTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

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

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	cancelWorker()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Notification queue
	notificationQueue, err := notificationqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.NotificationQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up notification queue: %v", err)
	}

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUseCase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(authUseCase, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUseCase, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUseCase := appointments.NewAppointmentUsecase(appointmentMongoRepository, notificationQueue, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(appointmentUseCase, bootstrap.Logger)

	// Calendar
	calendarUseCase := calendar.NewCalendarUsecase(appointmentMongoRepository)
	calendarController := controllers.NewCalendarController(calendarUseCase, bootstrap.Logger)

	// Availability
	availabilityMongoRepository := availability.NewAvailabilityMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	availabilityUseCase := availability.NewAvailabilityUsecase(availabilityMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(availabilityUseCase, bootstrap.Logger)

	// Reminder worker
	if bootstrap.InternalConfig.App.ReminderWorkerEnabled {
		lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
		reminderWorker := reminders.NewWorker(
			bootstrap.Logger,
			bootstrap.InternalConfig,
			lockService,
			appointmentMongoRepository,
			notificationQueue,
		)
		reminderWorker.Start(ctx)
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		calendarController,
		availabilityController,
		appointmentController,
	)
}
