package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ecomarket/internal/cart"
	"ecomarket/internal/catalog"
	"ecomarket/internal/config"
	"ecomarket/internal/localstore"
	custommiddleware "ecomarket/internal/middleware"
	"ecomarket/internal/notify"
	"ecomarket/internal/orders"
	"ecomarket/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config  *config.Config
	logger  *zap.Logger
	redis   *redis.Client
	catalog *catalog.Catalog
}

func NewServer(cfg *config.Config, logger *zap.Logger, favorites *localstore.Store) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize state containers
	notifier := notify.NewLogNotifier(logger)
	fetcher := catalog.NewHTTPFetcher(cfg.Catalog.FetchTimeout, logger)
	productCatalog := catalog.New(fetcher, cfg.Catalog.RemoteURL, nil, logger)
	shoppingCart := cart.New(notifier)
	orderHistory := orders.New()
	if cfg.Catalog.SeedSampleOrders {
		orderHistory.SeedSampleOrders()
	}

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(productCatalog, favorites, logger)
	cartHandler := transport.NewCartHandler(shoppingCart, productCatalog, logger)
	orderHandler := transport.NewOrderHandler(orderHistory, shoppingCart, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:  cfg,
		logger:  logger,
		redis:   redisClient,
		catalog: productCatalog,
	}

	return server
}

// WarmCatalog performs the initial catalog load. Remote unavailability is
// handled inside FetchProducts; the server starts with at least the baseline
// list either way.
func (s *Server) WarmCatalog(ctx context.Context) {
	s.catalog.FetchProducts(ctx)
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
