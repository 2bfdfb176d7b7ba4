package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/config"
	"github.com/carelink/practice-api/internal/database"
	"github.com/carelink/practice-api/internal/handler"
	"github.com/carelink/practice-api/internal/logger"
	middlewarepkg "github.com/carelink/practice-api/internal/middleware"
	"github.com/carelink/practice-api/internal/repository"
	"github.com/carelink/practice-api/internal/router"
	"github.com/carelink/practice-api/internal/service"
	"github.com/carelink/practice-api/internal/validation"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	pool, err := database.Connect(ctx, database.Options{DSN: cfg.DatabaseURL, MaxConns: cfg.DatabaseMaxConns})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.Env != "development")

	usersRepo := repository.NewPGXUsersRepository(pool)
	patientsRepo := repository.NewPGXPatientsRepository(pool)
	casesRepo := repository.NewPGXCasesRepository(pool)
	appointmentsRepo := repository.NewPGXAppointmentsRepository(pool)
	examsRepo := repository.NewPGXExamsRepository(pool)
	tasksRepo := repository.NewPGXTasksRepository(pool)
	physiciansRepo := repository.NewPGXPhysiciansRepository(pool)
	attorneysRepo := repository.NewPGXAttorneysRepository(pool)
	payersRepo := repository.NewPGXPayersRepository(pool)
	facilitiesRepo := repository.NewPGXFacilitiesRepository(pool)
	statusesRepo := repository.NewPGXStatusesRepository(pool)

	authService := service.NewAuthService(usersRepo, sessions, log)
	userService := service.NewUserService(usersRepo)
	patientService := service.NewPatientService(patientsRepo, cfg.PhoneRegion)
	caseService := service.NewCaseService(casesRepo, patientsRepo)
	appointmentService := service.NewAppointmentService(appointmentsRepo, patientsRepo)
	examService := service.NewExamService(examsRepo, patientsRepo)
	taskService := service.NewTaskService(tasksRepo)
	directoryService := service.NewDirectoryService(physiciansRepo, attorneysRepo, payersRepo, facilitiesRepo, statusesRepo, cfg.PhoneRegion)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, sessions, log),
		Users:        handler.NewUsersHandler(userService, log),
		Patients:     handler.NewPatientsHandler(patientService, log),
		Cases:        handler.NewCasesHandler(caseService, log),
		Appointments: handler.NewAppointmentsHandler(appointmentService, log),
		Exams:        handler.NewExamsHandler(examService, log),
		Tasks:        handler.NewTasksHandler(taskService, log),
		Directory:    handler.NewDirectoryHandler(directoryService, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, sessions, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
