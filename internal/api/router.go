package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/onlineshop/shop-system/internal/api/handler"
	"github.com/onlineshop/shop-system/internal/api/middleware"
	"github.com/onlineshop/shop-system/internal/core/domain"
	"github.com/onlineshop/shop-system/internal/core/ports"
	"github.com/onlineshop/shop-system/internal/core/service"
	"github.com/onlineshop/shop-system/internal/infrastructure/config"
	mongodb "github.com/onlineshop/shop-system/internal/infrastructure/db/mongo"
	"github.com/onlineshop/shop-system/internal/infrastructure/db/mysql"
	redisdb "github.com/onlineshop/shop-system/internal/infrastructure/db/redis"
	"github.com/onlineshop/shop-system/internal/infrastructure/report"
)

// Services bundles the use-case layer so main can hand the order service to
// the scheduler without rebuilding it.
type Services struct {
	Orders    ports.OrderService
	Customers ports.CustomerService
	Products  ports.ProductService
	Auth      ports.AuthService
	Reports   ports.ReportService
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the wired services. mongoDB may be nil; the order audit
// trail is then disabled.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *goredis.Client, mongoDB *mongodriver.Database, log zerolog.Logger) (*echo.Echo, *Services) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("onlineshop"))

	// --- Repositories ---
	customerRepo := mysql.NewCustomerRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)

	var audit ports.AuditRepository
	if mongoDB != nil {
		audit = mongodb.NewAuditRepository(mongoDB)
	}

	// --- Services ---
	productCache := redisdb.NewProductCache(rdb, log)
	svcs := &Services{
		Orders:    service.NewOrderService(orderRepo, customerRepo, productRepo, audit, cfg.ReconcileAfter, log),
		Customers: service.NewCustomerService(customerRepo, log),
		Products:  service.NewProductService(productRepo, productCache, log),
		Auth:      service.NewAuthService(customerRepo, cfg.JWTSecret, cfg.TokenTTL, log),
	}
	svcs.Reports = service.NewReportService(orderRepo, customerRepo, report.NewPDFRenderer(), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	customerHandler := handler.NewCustomerHandler(svcs.Customers, svcs.Reports)
	productHandler := handler.NewProductHandler(svcs.Products)
	orderHandler := handler.NewOrderHandler(svcs.Orders, svcs.Reports)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleCustomer)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/products", productHandler.GetAll)
	e.GET("/products/:id", productHandler.GetByID)

	// --- Admin routes ---
	e.POST("/admin/add", authHandler.AddAdmin, auth, adminOnly)

	e.GET("/customers", customerHandler.GetAll, auth, adminOnly)
	e.GET("/customers/report", customerHandler.Report, auth, adminOnly)

	e.POST("/products/add", productHandler.Add, auth, adminOnly)
	e.PUT("/products/updateById/:id", productHandler.UpdateByID, auth, adminOnly)
	e.DELETE("/products/deleteById/:id", productHandler.DeleteByID, auth, adminOnly)

	e.GET("/orders", orderHandler.GetAll, auth, adminOnly)
	e.GET("/orders/:id", orderHandler.GetByID, auth, adminOnly)
	e.DELETE("/orders/deleteById/:id", orderHandler.DeleteByID, auth, adminOnly)
	e.GET("/orders/:id/receipt", orderHandler.Receipt, auth, adminOnly)

	// --- Authenticated routes (admin or customer) ---
	e.POST("/orders/buy", orderHandler.Buy, auth, anyRole)
	e.GET("/customers/:id", customerHandler.GetByID, auth, anyRole)
	e.PUT("/customers/updateById/:id", customerHandler.UpdateByID, auth, anyRole)
	e.DELETE("/customers/deleteById/:id", customerHandler.DeleteByID, auth, anyRole)
	e.GET("/customers/:id/image", customerHandler.Image, auth, anyRole)
	e.GET("/products/:id/image", productHandler.Image, auth, anyRole)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, mongoDB)

	e.GET("/health", healthHandler.Liveness)            // liveness  - is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness - are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, svcs
}
