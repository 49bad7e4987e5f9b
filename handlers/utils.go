package handlers

import "github.com/gofiber/fiber/v2"

// getQueryParam reads a value from the query string, then the form body.
// htmx sends hx-vals as form data on POST.
func getQueryParam(ctx *fiber.Ctx, key string) string {
	if value := ctx.Query(key); value != "" {
		return value
	}
	return ctx.FormValue(key)
}
