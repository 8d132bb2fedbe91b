package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"studentmgmt/internal/config"
	"studentmgmt/internal/handler"
)

// Register wires routes and middleware. Everything except login/refresh and
// the health check sits behind the JWT gate.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	studentHandler *handler.StudentHandler,
	lessonHandler *handler.LessonHandler,
	paymentHandler *handler.PaymentHandler,
	reportHandler *handler.ReportHandler,
	userHandler *handler.UserHandler,
	lookupHandler *handler.LookupHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Student routes
	secured.GET("/students", studentHandler.List)
	secured.GET("/students/export", studentHandler.Export)
	secured.GET("/students/:id", studentHandler.Get)
	secured.POST("/students", studentHandler.Create)
	secured.PUT("/students/:id", studentHandler.Update)
	secured.DELETE("/students/:id", studentHandler.Delete)

	// Lesson routes
	secured.GET("/lessons", lessonHandler.List)
	secured.GET("/lessons/export", lessonHandler.Export)
	secured.GET("/lessons/:id", lessonHandler.Get)
	secured.POST("/lessons", lessonHandler.Create)
	secured.PUT("/lessons/:id", lessonHandler.Update)
	secured.DELETE("/lessons/:id", lessonHandler.Delete)

	// Payment routes
	secured.GET("/payments", paymentHandler.List)
	secured.GET("/payments/export", paymentHandler.Export)
	secured.GET("/payments/:id", paymentHandler.Get)
	secured.POST("/payments", paymentHandler.Create)
	secured.PUT("/payments/:id", paymentHandler.Update)
	secured.DELETE("/payments/:id", paymentHandler.Delete)

	// Report routes
	secured.GET("/reports/balances", reportHandler.Balances)

	// User routes
	secured.GET("/users", userHandler.List)
	secured.GET("/users/:id", userHandler.Get)
	secured.POST("/users", userHandler.Create)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete)

	// System tables
	secured.GET("/locations", lookupHandler.ListLocations)
	secured.POST("/locations", lookupHandler.CreateLocation)
	secured.DELETE("/locations/:id", lookupHandler.DeleteLocation)
	secured.GET("/subjects", lookupHandler.ListSubjects)
	secured.POST("/subjects", lookupHandler.CreateSubject)
	secured.DELETE("/subjects/:id", lookupHandler.DeleteSubject)
	secured.GET("/grades", lookupHandler.ListGrades)
	secured.POST("/grades", lookupHandler.CreateGrade)
	secured.DELETE("/grades/:id", lookupHandler.DeleteGrade)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
