package local

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// StampRenderTime records when the request started so every component
// rendered for it agrees on the current date.
func StampRenderTime(c *fiber.Ctx) error {
	SetRenderTime(c, time.Now())
	return c.Next()
}

func SetRenderTime(c *fiber.Ctx, t time.Time) {
	c.Locals("renderTime", t)
}

// GetRenderTime falls back to the wall clock when no stamp is present.
func GetRenderTime(c *fiber.Ctx) time.Time {
	if t, ok := c.Locals("renderTime").(time.Time); ok {
		return t
	}
	return time.Now()
}
