package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/launchkit/site/ui"
)

// CustomErrorHandler renders every error as an HTML page. Server errors are
// logged and shown only as their status text.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Printf("error serving %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = http.StatusText(code)
	}

	// Drop anything a failed render already streamed.
	ctx.Response().ResetBody()
	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message))
}
