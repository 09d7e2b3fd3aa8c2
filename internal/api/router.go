package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymclub/booking-system/internal/api/handler"
	"github.com/gymclub/booking-system/internal/api/middleware"
	"github.com/gymclub/booking-system/internal/auth"
	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
	"github.com/gymclub/booking-system/internal/core/service"
	mongodb "github.com/gymclub/booking-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is passed in so the caller owns the dispatcher lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *auth.TokenService, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("gymclub"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	cartService := service.NewCartService(cartRepo, serviceRepo, log)
	orderService := service.NewOrderService(orderRepo, audit, log)
	reviewService := service.NewReviewService(reviewRepo, audit, log)
	messageService := service.NewMessageService(messageRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	messageHandler := handler.NewMessageHandler(messageService)

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/send-message", messageHandler.Send)
	e.GET("/get-services", catalogHandler.List)
	e.GET("/get-approved-review", reviewHandler.ListApproved)

	// --- Authenticated routes ---
	e.POST("/add-to-cart", cartHandler.Add, authenticated)
	e.GET("/get-cart", cartHandler.List, authenticated)
	e.POST("/submit-order", orderHandler.Submit, authenticated)
	e.DELETE("/clear-cart", cartHandler.Clear, authenticated)
	e.GET("/getOrders", orderHandler.List, authenticated)
	e.POST("/submit-review", reviewHandler.Submit, authenticated)

	// --- Admin routes ---
	e.GET("/users", userHandler.List, authenticated, adminOnly)
	e.GET("/get-messages", messageHandler.ListAll, authenticated, adminOnly)
	e.POST("/addService", catalogHandler.Add, authenticated, adminOnly)
	e.DELETE("/deleteService/:id", catalogHandler.Delete, authenticated, adminOnly)
	e.PATCH("/update-order-status", orderHandler.UpdateStatus, authenticated, adminOnly)
	e.GET("/get-all-review", reviewHandler.ListAll, authenticated, adminOnly)
	e.POST("/review-status-updater", reviewHandler.UpdateStatus, authenticated, adminOnly)
	e.GET("/makeAdmin/:email", userHandler.MakeAdmin, authenticated, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
