package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/http/handlers"
	"github.com/spec-kit/pos-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Customers  *handlers.CustomersHandler
	Accounts   *handlers.AccountsHandler
	Categories *handlers.CategoriesHandler
	Products   *handlers.ProductsHandler
	Orders     *handlers.OrdersHandler
	Tokens     *auth.TokenService
}

// RegisterRoutes wires HTTP routes. Catalog reads are public; everything
// touching customer data requires a token, and administration requires the
// admin flag.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	requireAuth := auth.RequireAuth(cfg.Tokens)
	requireAdmin := auth.RequireAdmin()

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", requireAuth, requireAdmin, cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Get("/me", requireAuth, cfg.Auth.Me)

	customers := app.Group("/customers", requireAuth)
	customers.Get("/", requireAdmin, cfg.Customers.List)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)

	accounts := app.Group("/accounts", requireAuth, requireAdmin)
	accounts.Get("/", cfg.Accounts.List)
	accounts.Delete("/:id", cfg.Accounts.Delete)

	categories := app.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/:id", cfg.Categories.Get)
	categories.Post("/", requireAuth, requireAdmin, cfg.Categories.Create)
	categories.Put("/:id", requireAuth, requireAdmin, cfg.Categories.Update)
	categories.Delete("/:id", requireAuth, requireAdmin, cfg.Categories.Delete)

	products := app.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.Get)
	products.Post("/", requireAuth, requireAdmin, cfg.Products.Create)
	products.Put("/:id", requireAuth, requireAdmin, cfg.Products.Update)
	products.Delete("/:id", requireAuth, requireAdmin, cfg.Products.Delete)

	orders := app.Group("/orders", requireAuth)
	orders.Get("/", cfg.Orders.List)
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Put("/:id", requireAdmin, cfg.Orders.Update)
	orders.Delete("/:id", requireAdmin, cfg.Orders.Delete)
}
