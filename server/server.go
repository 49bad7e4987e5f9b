package server

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	h "github.com/launchkit/site/handlers"
	"github.com/launchkit/site/local"
	"github.com/launchkit/site/static"
	"github.com/launchkit/site/ui"
)

// Options toggles the middleware that is noisy or stateful in tests.
type Options struct {
	RequestLogging bool
	RateLimit      bool
}

// New builds the Fiber application with all routes registered.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	if opts.RateLimit {
		app.Use(h.GlobalRateLimiter())
	}
	if opts.RequestLogging {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(local.StampRenderTime)

	// Static files
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(static.FS),
		PathPrefix: "files",
	}))
	// Landing page and its fragments
	app.Get("/", h.HandleHome)
	app.Post(ui.NavbarToggleURL, h.HandleNavbarToggle)

	app.Get("/robots.txt", h.HandleRobots)
	app.Get("/sitemap.xml", h.HandleSitemap)
	app.Get("/health", h.HandleHealth)

	// Anything else is a 404 rendered by the error handler
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found: "+c.Path())
	})

	return app
}
