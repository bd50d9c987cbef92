package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "foodwaste/internal/log"
	"foodwaste/internal/metrics"
)

// Register mounts every route on app.
func Register(app *fiber.App, d *Deps) {
	app.Get("/", d.DashboardHandler.Home)

	writes := limiter.New(limiter.Config{
		Max:        d.WriteLimit,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|write"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.write.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	api := app.Group("/api/v1")
	api.Get("/overview", d.DashboardHandler.Overview)
	api.Get("/filters", d.DashboardHandler.Filters)
	api.Get("/tables/:name", d.DashboardHandler.Table)

	api.Get("/listings", d.DashboardHandler.Listings)
	api.Get("/listings/contacts", d.DashboardHandler.Contacts)
	api.Get("/listings/:id", d.ListingHandler.Get)
	api.Post("/listings", writes, d.ListingHandler.Create)
	api.Patch("/listings/:id/quantity", writes, d.ListingHandler.UpdateQuantity)
	api.Delete("/listings/:id", writes, d.ListingHandler.Delete)
	api.Post("/claims", writes, d.ClaimHandler.Create)

	api.Get("/queries", d.ReportHandler.List)
	api.Get("/queries/:id", d.ReportHandler.Run)

	api.Post("/reload", writes, d.AdminHandler.Reload)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
