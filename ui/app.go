package ui

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/launchkit/site/config"
)

// App composes the page sections in their fixed order.
func App(nav *Navbar, now time.Time, icons IconProvider) g.Node {
	return Div(
		ID("app"),
		Class("min-h-screen flex flex-col bg-white text-gray-900"),
		nav.Render(icons),
		Main(
			Class("flex-grow"),
			Hero(icons),
			FeatureGrid(Features),
		),
		SiteFooter(now, icons),
	)
}

func LandingPage(nav *Navbar, now time.Time, icons IconProvider) g.Node {
	return Page(
		config.SiteName+" | Build faster",
		"A production-ready foundation for modern web products.",
		[]g.Node{App(nav, now, icons)},
	)
}
