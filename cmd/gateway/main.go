package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/censudex/gateway/internal/api/http"
	"github.com/censudex/gateway/internal/api/http/handlers"
	"github.com/censudex/gateway/internal/auth"
	"github.com/censudex/gateway/internal/authservice"
	"github.com/censudex/gateway/internal/config"
	"github.com/censudex/gateway/internal/gate"
	"github.com/censudex/gateway/internal/observability"
	"github.com/censudex/gateway/internal/rpc"
	"github.com/censudex/gateway/internal/tokencache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	var cache tokencache.Cache
	var cachePinger handlers.Pinger
	switch cfg.Cache.Backend {
	case "redis":
		redisCache := tokencache.NewRedis(cfg.Redis, logger)
		defer redisCache.Close()
		cache = redisCache
		cachePinger = redisCache
	default:
		cache = tokencache.NewMemory()
	}

	authClient := authservice.NewClient(cfg.Auth, logger)
	gateMiddleware := gate.NewMiddleware(cache, authClient, gate.Options{
		PositiveTTL: cfg.Cache.PositiveTTL(),
		NegativeTTL: cfg.Cache.NegativeTTL(),
	}, logger)

	identityMiddleware := auth.NewIdentityMiddleware(auth.NewTokenManager(cfg.Auth.JWTSecret))

	backendHTTP := &http.Client{}
	clientsAdapter := rpc.NewClientsAdapter(cfg.Backends.ClientsURL, backendHTTP, logger, rpc.WithDegradeUnimplemented())
	inventoryAdapter := rpc.NewInventoryAdapter(cfg.Backends.InventoryURL, backendHTTP, logger)
	ordersAdapter := rpc.NewOrdersAdapter(cfg.Backends.OrdersURL, backendHTTP, logger)
	productsAdapter := rpc.NewProductsAdapter(cfg.Backends.ProductsURL, backendHTTP, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), gateMiddleware.Handle)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cachePinger),
		Auth:      handlers.NewAuthHandler(authClient),
		Clients:   handlers.NewClientsHandler(clientsAdapter),
		Inventory: handlers.NewInventoryHandler(inventoryAdapter),
		Orders:    handlers.NewOrdersHandler(ordersAdapter),
		Products:  handlers.NewProductsHandler(productsAdapter),
		Identity:  identityMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
