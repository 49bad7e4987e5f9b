package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports liveness and, when enabled, page cache counters.
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}

	if pageCache != nil {
		health["page_cache"] = pageCache.Stats()
	}

	return c.JSON(health)
}
