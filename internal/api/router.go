package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifesource/lifesource-api/internal/api/handler"
	"github.com/lifesource/lifesource-api/internal/api/middleware"
	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/service"
	mongodb "github.com/lifesource/lifesource-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lifesource/lifesource-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the runtime settings the router needs.
type RouterConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies are wired explicitly here, once, at process start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lifesource"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	hospitalRepo := mongodb.NewHospitalRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	reportsRepo := mongodb.NewReportsRepository(db)
	broadcaster := redisdb.NewBroadcaster(rdb)

	// --- Services ---
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, log)
	requestService := service.NewRequestService(requestRepo, log)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	notificationService := service.NewNotificationService(broadcaster, log)
	adminService := service.NewAdminService(reportsRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	requestHandler := handler.NewRequestHandler(requestService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Gates (auth first, then the role check) ---
	auth := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	hospitalStaff := middleware.RBAC(domain.RoleHospital, domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Users (admin directory) ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/users/:id", userHandler.Get, auth, adminOnly)

	// --- Hospitals ---
	e.GET("/hospitals", hospitalHandler.List)
	e.POST("/hospitals", hospitalHandler.Create, auth, adminOnly)
	e.PATCH("/hospitals/:id/verify", hospitalHandler.Verify, auth, adminOnly)

	// --- Appointments ---
	e.POST("/appointments", appointmentHandler.Create, auth, middleware.RBAC(domain.RoleDonor))
	e.GET("/appointments/donor", appointmentHandler.ForDonor, auth)
	e.GET("/appointments/hospital", appointmentHandler.ForHospital, auth)
	e.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus, auth, hospitalStaff)

	// --- Blood requests ---
	e.POST("/requests", requestHandler.Create, auth, middleware.RBAC(domain.RoleRecipient))
	e.GET("/requests/recipient", requestHandler.ForRecipient, auth)
	e.GET("/requests/hospital", requestHandler.PendingForHospital, auth)
	e.PATCH("/requests/:id/status", requestHandler.UpdateStatus, auth, hospitalStaff)

	// --- Inventory ---
	e.POST("/inventory", inventoryHandler.Add, auth, hospitalStaff)
	e.GET("/inventory/hospital", inventoryHandler.ByHospital, auth)

	// --- Notifications / Admin ---
	e.POST("/notifications/broadcast-test", notificationHandler.BroadcastTest, auth, adminOnly)
	e.GET("/notifications/recent", notificationHandler.Recent, auth, adminOnly)
	e.POST("/admin/rebuild-reports", adminHandler.RebuildReports, auth, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
