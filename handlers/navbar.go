package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/launchkit/site/ui"
)

// HandleNavbarToggle flips the posted menu state and returns the navbar
// fragment for htmx to swap in.
func HandleNavbarToggle(c *fiber.Ctx) error {
	nav := ui.NewNavbar(ui.ParseMenuState(getQueryParam(c, "menu")))
	nav.Toggle()
	return render(c, nav.Render(icons))
}
