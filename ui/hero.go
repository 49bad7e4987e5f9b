package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/launchkit/site/config"
)

func Hero(icons IconProvider) g.Node {
	return Section(
		ID("hero"),
		Class("pt-32 pb-20 px-4 bg-gradient-to-b from-indigo-50 to-white"),
		Div(
			Class("max-w-4xl mx-auto text-center"),
			Span(
				Class("inline-block mb-6 px-3 py-1 rounded-full bg-indigo-100 text-indigo-700 text-sm font-medium"),
				g.Text("Now in public beta"),
			),
			H1(
				Class("text-4xl sm:text-5xl md:text-6xl font-extrabold tracking-tight text-gray-900"),
				g.Text("Ship your next idea with "),
				Span(Class("text-indigo-600"), g.Text(config.SiteName)),
			),
			P(
				Class("mt-6 text-lg sm:text-xl text-gray-600 max-w-2xl mx-auto"),
				g.Text("A production-ready foundation for modern web products. Skip the boilerplate and focus on what makes your product unique."),
			),
			actionButtons(
				LinkButton(ButtonPrimary, "#get-started",
					g.Text("Start Building"),
					icons.Icon(IconChevronRight, "w-5 h-5"),
				),
				LinkButton(ButtonOutline, "#docs",
					g.Text("View Documentation"),
				),
			),
		),
	)
}
