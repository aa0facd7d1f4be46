package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const banner = "API da LojaBase rodando"

// NewApp builds the fiber app with middlewares and all routes mounted.
func NewApp(d *Deps, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "lojabase",
		ErrorHandler: ErrorHandler,
		BodyLimit:    1 << 20, // 1 MiB
	})

	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("start", time.Now())
		return c.Next()
	})
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	Mount(app, d)
	return app
}

// Mount registers the public and token-protected routes on r.
func Mount(r fiber.Router, d *Deps) {
	r.Get("/", func(c *fiber.Ctx) error { return c.SendString(banner) })
	r.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	r.Post("/clientes", d.AuthHandler.Register)
	r.Post("/login", d.AuthHandler.Login)

	guard := RequireToken(d.Tokens)

	r.Get("/produtos", guard, d.ProductHandler.List)
	r.Post("/produtos", guard, d.ProductHandler.Create)
	r.Put("/produtos/:id", guard, d.ProductHandler.Update)
	r.Delete("/produtos/:id", guard, d.ProductHandler.Delete)

	r.Get("/clientes", guard, d.CustomerHandler.List)
	r.Put("/clientes/:id", guard, d.CustomerHandler.Update)
	r.Delete("/clientes/:id", guard, d.CustomerHandler.Delete)
}
