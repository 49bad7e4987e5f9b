package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/launchkit/site/config"
)

// ---- Page Layout ----

func Page(title, description string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href("/static/favicon.svg")),
			Script(Src(config.TailwindCSSURL)),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Class("antialiased"),
			g.Group(content),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto px-4"),
		g.Group(content),
	)
}
