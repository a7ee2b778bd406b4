package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/api/http/handlers"
	"github.com/censudex/gateway/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Clients   *handlers.ClientsHandler
	Inventory *handlers.InventoryHandler
	Orders    *handlers.OrdersHandler
	Products  *handlers.ProductsHandler
	Identity  *auth.IdentityMiddleware
}

// RegisterRoutes wires HTTP routes. Routes without the identity
// middleware are reachable anonymously; the revocation gate still
// screens any bearer token they may carry.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/validate", cfg.Auth.Validate)

	identity := cfg.Identity.Handle

	clients := app.Group("/clients")
	clients.Get("/", identity, auth.RequireAdmin(), cfg.Clients.List)
	clients.Post("/", cfg.Clients.Register)
	clients.Get("/:id", cfg.Clients.GetByID)
	clients.Patch("/:id", identity, cfg.Clients.Update)
	clients.Delete("/:id", identity, auth.RequireAdmin(), cfg.Clients.EnableDisable)

	inventory := app.Group("/inventory")
	inventory.Get("/", identity, cfg.Inventory.List)
	inventory.Post("/", identity, cfg.Inventory.Add)
	inventory.Get("/:productId", cfg.Inventory.GetByID)
	inventory.Patch("/:productId/stock", cfg.Inventory.UpdateStock)
	inventory.Patch("/:productId/minimum-stock", cfg.Inventory.SetMinimumStock)

	orders := app.Group("/orders", identity)
	orders.Post("/", auth.RequireRoles(auth.RoleUser, auth.RoleAdmin), cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/history/:clientId", cfg.Orders.History)
	orders.Get("/:id", cfg.Orders.GetByID)
	orders.Put("/:id/status", auth.RequireAdmin(), cfg.Orders.UpdateStatus)
	orders.Delete("/:id", cfg.Orders.Cancel)

	products := app.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.GetByID)
	products.Post("/", identity, auth.RequireAdmin(), cfg.Products.Create)
}
