package router

import (
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	AppName        string
	AccessLog      bool
	Tokens         *jwt.Service
	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	Hub            *ws.Hub
	Metrics        *middleware.Metrics
}

// New builds the Fiber app with every route registered
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: d.AppName,
	})

	// Middleware
	if d.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(cors.New())
	if d.Metrics != nil {
		app.Use(d.Metrics.Handler())
		app.Get("/metrics", d.Metrics.Endpoint())
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ============ PUBLIC ROUTES ============
	app.Post("/signup", d.AuthHandler.Signup)
	app.Post("/signin", d.AuthHandler.Signin)
	app.Get("/products", d.CatalogHandler.GetPublishedProducts)

	// ============ PROTECTED ROUTES ============
	auth := middleware.RequireAuth(d.Tokens)
	app.Get("/allProducts", auth, d.CatalogHandler.GetAllProducts)
	app.Post("/product", auth, d.CatalogHandler.CreateProduct)
	app.Put("/product/:id", auth, d.CatalogHandler.UpdateProduct)
	app.Delete("/product/:id", auth, d.CatalogHandler.DeleteProduct)

	// WebSocket live feed
	if d.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			if !d.Hub.Join(c) {
				return
			}
			defer d.Hub.Leave(c)

			for {
				// Keep alive loop
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}

	return app
}
