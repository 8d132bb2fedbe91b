package main

import (
	"log/slog"
	"net/http"
	"os"

	"studentmgmt/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"studentmgmt/internal/auth"
	"studentmgmt/internal/cache"
	"studentmgmt/internal/config"
	"studentmgmt/internal/db"
	"studentmgmt/internal/format"
	"studentmgmt/internal/handler"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
	"studentmgmt/internal/router"
	"studentmgmt/internal/service"
	"studentmgmt/pkg/logging"
)

// @title Student Management API
// @version 1.0
// @description Admin API for students, lessons, payments and balance reporting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logging.Setup()
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		slog.Error("database init", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.Location{},
		&model.Subject{},
		&model.Grade{},
		&model.Student{},
		&model.Lesson{},
		&model.Payment{},
		&model.User{},
	); err != nil {
		slog.Error("auto-migrate", "err", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	currency, err := format.NewCurrency(cfg.CurrencyLocale, cfg.CurrencyCode)
	if err != nil {
		slog.Error("currency formatter", "err", err)
		os.Exit(1)
	}

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(gormDB)
	lessonRepo := repository.NewLessonRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	lookupRepo := repository.NewLookupRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	studentService := service.NewStudentService(studentRepo, lessonRepo, paymentRepo, cacheClient)
	lessonService := service.NewLessonService(lessonRepo)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo)
	reportService := service.NewReportService(studentRepo, lessonRepo, paymentRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService, currency)
	lessonHandler := handler.NewLessonHandler(lessonService, currency)
	paymentHandler := handler.NewPaymentHandler(paymentService, currency)
	reportHandler := handler.NewReportHandler(reportService, currency)
	userHandler := handler.NewUserHandler(userService)
	lookupHandler := handler.NewLookupHandler(lookupRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		studentHandler,
		lessonHandler,
		paymentHandler,
		reportHandler,
		userHandler,
		lookupHandler,
	)

	addr := ":" + cfg.ServerPort
	slog.Info("starting server", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("server start", "err", err)
		os.Exit(1)
	}
}
