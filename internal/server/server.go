package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"shelfsmart/internal/config"
	"shelfsmart/internal/expiry"
	"shelfsmart/internal/foodfacts"
	"shelfsmart/internal/mealdb"
	custommiddleware "shelfsmart/internal/middleware"
	"shelfsmart/internal/nutrition"
	"shelfsmart/internal/recipe"
	"shelfsmart/internal/repository"
	"shelfsmart/internal/service"
	"shelfsmart/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))

	// Rate limiting is optional; it only runs when Redis is configured.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 100,
			Window:            time.Minute,
			KeyPrefix:         "shelfsmart:ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)

	// Initialize external clients
	foodFactsClient := foodfacts.NewClient(cfg.FoodFacts.BaseURL)
	mealDBClient := mealdb.NewClient(cfg.MealDB.BaseURL)

	// Summarizer stays nil when no API key is configured; the service turns
	// that into a 503 on the nutrition endpoint.
	var summarizer service.NutritionSummarizer
	if s := nutrition.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, logger); s != nil {
		summarizer = s
	}

	// Initialize services
	alertCfg := expiry.Config{
		SoonWindowDays:    cfg.Alerts.SoonWindowDays,
		LowStockThreshold: cfg.Alerts.LowStockThreshold,
	}
	inventoryService := service.NewInventoryService(productRepo, foodFactsClient, summarizer, alertCfg)
	matcher := recipe.NewMatcher(mealDBClient, logger)

	// Initialize handlers
	productHandler := transport.NewProductHandler(inventoryService, logger)
	alertHandler := transport.NewAlertHandler(inventoryService, logger)
	recipeHandler := transport.NewRecipeHandler(matcher, inventoryService, logger)

	// Register routes
	productHandler.RegisterRoutes(router)
	alertHandler.RegisterRoutes(router)
	recipeHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
