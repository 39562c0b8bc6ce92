package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bestcars/dealership-gateway/internal/api/handler"
	"github.com/bestcars/dealership-gateway/internal/api/middleware"
	"github.com/bestcars/dealership-gateway/internal/core/service"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/chat"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/config"
	mongodb "github.com/bestcars/dealership-gateway/internal/infrastructure/db/mongo"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/db/postgres"
	redisdb "github.com/bestcars/dealership-gateway/internal/infrastructure/db/redis"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/downstream"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, pg *sql.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dealership"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	revoker := redisdb.NewRevocationStore(rdb)
	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, 24*time.Hour, log)

	catalogService := service.NewCatalogService(postgres.NewCatalogRepository(pg), log)

	dealerGateway := downstream.NewDealerClient(downstream.Config{BaseURL: cfg.Downstream.DealerURL, Logger: log})
	sentiment := downstream.NewSentimentClient(downstream.Config{BaseURL: cfg.Downstream.SentimentURL, Logger: log})
	searchCars := downstream.NewSearchCarsClient(downstream.Config{BaseURL: cfg.Downstream.SearchURL, Logger: log})

	dealerService := service.NewDealerService(dealerGateway, sentiment, cfg.Downstream.FanoutWorkers, log)
	inventoryService := service.NewInventoryService(searchCars, log)
	chatService := service.NewChatService(chat.NewOpenAIClient(chat.Config{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
	}), log)

	e.Use(middleware.Session(cfg.JWTSecret, revoker, log))

	// --- Identity routes ---
	authHandler := handler.NewAuthHandler(authService)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)
	e.POST("/register", authHandler.Register)

	// --- Catalog ---
	catalogHandler := handler.NewCatalogHandler(catalogService)
	e.GET("/get_cars", catalogHandler.GetCars)

	// --- Dealer / review aggregation ---
	// Mutating routes register with Any so the handlers can keep their
	// documented check order (authorization before verb) and fixed 405 bodies.
	dealerHandler := handler.NewDealerHandler(dealerService)
	e.GET("/get_dealers", dealerHandler.ListDealers)
	e.GET("/get_dealers/:state", dealerHandler.ListDealers)
	e.GET("/dealer/:id", dealerHandler.GetDealer)
	e.GET("/reviews/dealer/:id", dealerHandler.GetDealerReviews)
	e.GET("/reviews/:id", dealerHandler.GetReview)
	e.POST("/add_review", dealerHandler.AddReview)
	e.Any("/put_review/:id", dealerHandler.EditReview)
	e.Any("/edit_dealer/:id", dealerHandler.EditDealer)
	e.Any("/new_dealer", dealerHandler.NewDealer)

	// --- Inventory ---
	inventoryHandler := handler.NewInventoryHandler(inventoryService, log)
	e.GET("/get_inventory/:id", inventoryHandler.DealerInventory)
	e.GET("/full_inventory", inventoryHandler.FullInventory)
	e.Any("/makes_models", inventoryHandler.MakesModels)

	// --- Chat relay ---
	chatHandler := handler.NewChatHandler(chatService)
	e.Any("/chat/", chatHandler.Chat)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, pg)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
