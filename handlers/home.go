package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/launchkit/site/cache"
	"github.com/launchkit/site/config"
	"github.com/launchkit/site/local"
	"github.com/launchkit/site/ui"
)

const pageCacheMaxCost = 8 << 20

var pageCache *cache.Cache[[]byte]

// InitPageCache sets up the rendered landing page cache. Without it every
// request renders from scratch.
func InitPageCache() error {
	c, err := cache.New[[]byte]("Landing Page Cache", pageCacheMaxCost, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		return fmt.Errorf("error creating page cache: %w", err)
	}
	pageCache = c
	return nil
}

// HandleHome serves the landing page with the menu closed. Pages are cached
// per calendar year so the footer never shows a stale year.
func HandleHome(c *fiber.Ctx) error {
	now := local.GetRenderTime(c)
	key := fmt.Sprintf("landing:%d", now.Year())

	if pageCache != nil {
		if body, ok := pageCache.Get(key); ok {
			sendHTML(c.Response(), body)
			return nil
		}
	}

	var buf bytes.Buffer
	if err := ui.LandingPage(ui.NewNavbar(ui.MenuClosed), now, icons).Render(&buf); err != nil {
		return fmt.Errorf("error rendering landing page: %w", err)
	}

	if pageCache != nil {
		pageCache.SetWithTTL(key, buf.Bytes(), int64(buf.Len()), config.PageCacheTTL)
	}

	sendHTML(c.Response(), buf.Bytes())
	return nil
}
