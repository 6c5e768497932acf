package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"schoolms/config"
	"schoolms/middleware"
	"schoolms/services/school/delivery"
	"schoolms/services/school/repository"
	"schoolms/services/school/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment as-is")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	authRequired := middleware.AuthRequired(db)
	timeout := 10 * time.Second

	authRepo := repository.NewAuthRepository(db)
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authUC := usecase.NewAuthUseCase(authRepo, timeout)
	userUC := usecase.NewUserUseCase(userRepo, timeout)
	classUC := usecase.NewClassUseCase(classRepo, timeout)
	studentUC := usecase.NewStudentUseCase(studentRepo, timeout)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, timeout)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, timeout)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, timeout)

	delivery.NewAuthHandler(app, authUC, authRequired)
	delivery.NewUserHandler(app, userUC, authRequired)
	delivery.NewClassHandler(app, classUC, authRequired)
	delivery.NewStudentHandler(app, studentUC, authRequired)
	delivery.NewAttendanceHandler(app, attendanceUC, authRequired)
	delivery.NewNotificationHandler(app, notificationUC, authRequired)
	delivery.NewDashboardHandler(app, dashboardUC, authRequired)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
