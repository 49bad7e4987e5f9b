package ui

import (
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		http.StatusText(code),
		[]g.Node{
			contentContainer(
				Div(
					Class("py-24 text-center"),
					pageHeader(fmt.Sprintf("Error %d", code)),
					P(Class("text-gray-600 mb-8"), g.Text(message)),
					LinkButton(ButtonPrimary, "/", g.Text("Back to home")),
				),
			),
		},
	)
}
