package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/suprimentos/requisition-system/internal/api/handler"
	"github.com/suprimentos/requisition-system/internal/api/middleware"
	"github.com/suprimentos/requisition-system/internal/core/domain"
	"github.com/suprimentos/requisition-system/internal/core/service"
	"github.com/suprimentos/requisition-system/internal/infrastructure/db/postgres"
	redisdb "github.com/suprimentos/requisition-system/internal/infrastructure/db/redis"
	"github.com/suprimentos/requisition-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("requisition"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	requisitionRepo := postgres.NewRequisitionRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	requisitionService := service.NewRequisitionService(requisitionRepo, log)
	workflowService := service.NewWorkflowService(requisitionRepo, userRepo, dedup, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	requisitionHandler := handler.NewRequisitionHandler(requisitionService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/usuarios", userHandler.List, authMiddleware)
	e.GET("/requisicoes", requisitionHandler.GetOrList, authMiddleware)
	e.POST("/requisicoes", requisitionHandler.Create, authMiddleware)
	e.PUT("/requisicoes", requisitionHandler.Update, authMiddleware)

	e.POST("/requisicoes_decisao", workflowHandler.Decide,
		authMiddleware, middleware.RBAC(domain.RoleAprovador, domain.RoleAdmin))
	e.POST("/requisicoes_acompanhamento", workflowHandler.Track,
		authMiddleware, middleware.RBAC(domain.RoleCompras, domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
