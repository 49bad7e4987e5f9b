package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	g "maragu.dev/gomponents"

	"github.com/launchkit/site/ui"
)

// ViewRuntime mounts a component tree into a response.
type ViewRuntime interface {
	Mount(c *fiber.Ctx, root g.Node) error
}

// htmlRuntime streams gomponents output straight into the fasthttp body.
type htmlRuntime struct{}

func (htmlRuntime) Mount(c *fiber.Ctx, root g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return root.Render(c.Response().BodyWriter())
}

var (
	views ViewRuntime     = htmlRuntime{}
	icons ui.IconProvider = ui.LucideIcons{}
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	return views.Mount(c, component)
}

// sendHTML writes an already rendered page.
func sendHTML(resp *fasthttp.Response, body []byte) {
	resp.Header.SetContentType(fiber.MIMETextHTMLCharsetUTF8)
	resp.SetBody(body)
}
