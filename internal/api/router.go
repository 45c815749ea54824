package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/gdcworld/clinic-backoffice/docs"
	"github.com/gdcworld/clinic-backoffice/internal/api/handler"
	"github.com/gdcworld/clinic-backoffice/internal/api/middleware"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
	"github.com/gdcworld/clinic-backoffice/internal/core/service"
	"github.com/gdcworld/clinic-backoffice/internal/infrastructure/config"
	"github.com/gdcworld/clinic-backoffice/internal/infrastructure/db/postgres"
	redisidem "github.com/gdcworld/clinic-backoffice/internal/infrastructure/db/redis"
	"github.com/gdcworld/clinic-backoffice/pkg/logger"
)

// NewRouter builds the Echo instance with all routes registered. The rdb
// client may be nil, in which case idempotent create replay is disabled.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	log := logger.Get()

	// --- Global middleware ---
	// Prefix stripping runs pre-routing so both public mounts resolve to the
	// same route table.
	e.Pre(middleware.StripPrefixes(middleware.PublicPrefixes...))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "Idempotency-Key"},
	}))
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	procedureRepo := postgres.NewProcedureRepository(db)
	visitRepo := postgres.NewVisitRepository(db)

	var idem ports.IdempotencyStore
	if rdb != nil {
		idem = redisidem.NewIdempotencyStore(rdb)
	}

	roleService := service.NewRoleService(roleRepo, cfg.Roles.CacheTTL, log)
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, roleService, idem, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, log)
	procedureService := service.NewProcedureService(procedureRepo, log)
	visitService := service.NewVisitService(visitRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	roleHandler := handler.NewRoleHandler(roleService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	procedureHandler := handler.NewProcedureHandler(procedureService)
	visitHandler := handler.NewVisitHandler(visitService)
	healthHandler := handler.NewHealthHandler()

	authed := middleware.Auth(cfg.JWTSecret)

	// --- Public surface ---
	e.POST("/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Roles: readable by any authenticated account, writable by admin ---
	roles := e.Group("/roles", authed)
	roles.GET("", roleHandler.List, middleware.RBAC())
	roles.POST("", roleHandler.Create, middleware.RBAC(domain.RoleAdmin))
	roles.DELETE("", roleHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Accounts: admin and vice director only ---
	accounts := e.Group("/accounts", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleVice))
	accounts.GET("", accountHandler.List)
	accounts.POST("", accountHandler.Create)
	accounts.PATCH("", accountHandler.Update)
	accounts.DELETE("", accountHandler.Delete)

	// --- Categories: admin only ---
	categories := e.Group("/categories", authed, middleware.RBAC(domain.RoleAdmin))
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PATCH("", categoryHandler.Rename)
	categories.DELETE("", categoryHandler.Delete)

	// --- Expense ledger ---
	expenses := e.Group("/expenses", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleVice, "frontdesk"))
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.PATCH("", expenseHandler.Update)
	expenses.DELETE("", expenseHandler.Delete)

	// --- C-arm procedure ledger ---
	procedures := e.Group("/procedures", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleVice, "radiology"))
	procedures.GET("", procedureHandler.List)
	procedures.POST("", procedureHandler.Create)
	procedures.PATCH("", procedureHandler.Update)
	procedures.DELETE("", procedureHandler.Delete)

	// --- Dosu visit ledger ---
	visits := e.Group("/visits", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleVice, "physio", "ptadmin"))
	visits.GET("", visitHandler.List)
	visits.GET("/summary", visitHandler.Summary)
	visits.POST("", visitHandler.Create)
	visits.PATCH("", visitHandler.Update)
	visits.DELETE("", visitHandler.Delete)

	return e
}
