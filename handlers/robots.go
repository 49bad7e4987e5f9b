package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/launchkit/site/config"
)

// HandleRobots serves robots.txt with an absolute sitemap URL.
func HandleRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", config.BaseURL))
}
